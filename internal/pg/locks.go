package pg

import "fmt"

// ShedWalletLock serializes every write to the shed wallet and the debts it settles.
const ShedWalletLock = "shed-wallet"

func EmployeeLock(id int64) string {
	return fmt.Sprintf("employee:%d", id)
}

func CustomerLock(id int64) string {
	return fmt.Sprintf("customer:%d", id)
}

func SupplierLock(id int64) string {
	return fmt.Sprintf("supplier:%d", id)
}
