package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               int64           `db:"id"`
	Name             string          `db:"name"`
	PendingSalary    decimal.Decimal `db:"pending_salary"`
	YesterdayBalance decimal.Decimal `db:"yesterday_balance"`
}

type Customer struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type ExpenseKind string

const (
	ExpenseOperational ExpenseKind = "operational"
	ExpenseSalary      ExpenseKind = "salary"
)

type Expense struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        ExpenseKind     `json:"kind"`
}

// SupplyLine is a material supply embedded in a trip sheet row.
type SupplyLine struct {
	SupplierID int64           `json:"supplier_id"`
	Item       string          `json:"item"`
	Amount     decimal.Decimal `json:"amount"`
}

// TripRecord is one vehicle trip of an employee. Expenses never carry
// salary rows, wages live in SalaryDeducted or in the employee's pending salary.
type TripRecord struct {
	ID               int64           `db:"id"`
	SheetID          uuid.UUID       `db:"sheet_id"`
	EmployeeID       int64           `db:"employee_id"`
	VehicleID        int64           `db:"vehicle_id"`
	CustomerID       *int64          `db:"customer_id"`
	Date             time.Time       `db:"trip_date"`
	CashCollected    decimal.Decimal `db:"cash_collected"`
	CreditExtended   decimal.Decimal `db:"credit_extended"`
	SetCashTaken     decimal.Decimal `db:"set_cash_taken"`
	SetCashPaidBack  decimal.Decimal `db:"set_cash_paid_back"`
	YesterdayBalance decimal.Decimal `db:"yesterday_balance"`
	Expenses         []Expense       `db:"expenses"`
	SalaryDeducted   decimal.Decimal `db:"salary_deducted"`
	Supplies         []SupplyLine    `db:"supplies"`
	CreatedAt        time.Time       `db:"created_at"`
}

// SetCashAdvance is the outstanding view of a trip's cash advance.
type SetCashAdvance struct {
	TripID     int64
	EmployeeID int64
	VehicleID  int64
	Date       time.Time
	Taken      decimal.Decimal
	PaidBack   decimal.Decimal
}

func (a SetCashAdvance) Outstanding() decimal.Decimal {
	return a.Taken.Sub(a.PaidBack)
}

type SalaryMode string

const (
	SalaryDeductFromBalance SalaryMode = "deduct_from_balance"
	SalaryAccrueToPending   SalaryMode = "accrue_to_pending"
)

// TripSheet is a batch of trip rows submitted together for one employee.
type TripSheet struct {
	EmployeeID int64
	SalaryMode SalaryMode
	Rows       []TripRow
	Expenses   []Expense
}

type TripRow struct {
	VehicleID      int64
	CustomerID     *int64
	Date           time.Time
	CashCollected  decimal.Decimal
	CreditExtended decimal.Decimal
	SetCashTaken   decimal.Decimal
	Supplies       []SupplyLine
}

type FuelStatus string

const (
	FuelStatusPending FuelStatus = "pending"
	FuelStatusPartial FuelStatus = "partial"
	FuelStatusPaid    FuelStatus = "paid"
)

type FuelPurchase struct {
	ID             int64           `db:"id"`
	VehicleID      int64           `db:"vehicle_id"`
	EmployeeID     int64           `db:"employee_id"`
	Date           time.Time       `db:"purchase_date"`
	FuelAmount     decimal.Decimal `db:"fuel_amount"`
	TotalCost      decimal.Decimal `db:"total_cost"`
	PaidByEmployee decimal.Decimal `db:"paid_by_employee"`
	OverallPaid    decimal.Decimal `db:"overall_paid"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (p FuelPurchase) Remaining() decimal.Decimal {
	return p.TotalCost.Sub(p.PaidByEmployee).Sub(p.OverallPaid)
}

func (p FuelPurchase) Status() FuelStatus {
	remaining := p.Remaining()
	switch {
	case remaining.Sign() <= 0:
		return FuelStatusPaid
	case remaining.Equal(p.TotalCost):
		return FuelStatusPending
	default:
		return FuelStatusPartial
	}
}

type WalletTxType string

const (
	WalletPaymentSent     WalletTxType = "payment_sent"
	WalletPaymentReceived WalletTxType = "payment_received"
	WalletFuelPurchase    WalletTxType = "fuel_purchase"
	WalletAdjustment      WalletTxType = "adjustment"
	WalletRefund          WalletTxType = "refund"
)

func (t WalletTxType) Valid() bool {
	switch t {
	case WalletPaymentSent, WalletPaymentReceived, WalletFuelPurchase, WalletAdjustment, WalletRefund:
		return true
	}
	return false
}

type WalletTxStatus string

const (
	WalletTxCompleted WalletTxStatus = "completed"
)

type AllocationKind string

const (
	AllocationFuelPurchase AllocationKind = "fuel_purchase"
	AllocationSetCash      AllocationKind = "set_cash"
)

// AllocationStep is one slice of a lump payment applied to one record.
type AllocationStep struct {
	Kind           AllocationKind  `json:"kind"`
	RecordID       int64           `json:"record_id"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	RemainingAfter decimal.Decimal `json:"remaining_after"`
}

// ShedWalletTransaction is an append-only audit entry of the shed wallet.
type ShedWalletTransaction struct {
	ID            uuid.UUID        `db:"id"`
	Type          WalletTxType     `db:"type"`
	Amount        decimal.Decimal  `db:"amount"`
	Description   string           `db:"description"`
	PaymentMethod string           `db:"payment_method"`
	Allocations   []AllocationStep `db:"allocations"`
	Status        WalletTxStatus   `db:"status"`
	CreatedBy     int64            `db:"created_by"`
	CreatedAt     time.Time        `db:"created_at"`
}

type CreditPayment struct {
	ID                   int64           `db:"id"`
	CustomerID           int64           `db:"customer_id"`
	Amount               decimal.Decimal `db:"amount"`
	Date                 time.Time       `db:"payment_date"`
	Method               string          `db:"method"`
	Reference            string          `db:"reference"`
	Notes                string          `db:"notes"`
	OriginalCreditAmount decimal.Decimal `db:"original_credit_amount"`
	CreatedBy            int64           `db:"created_by"`
	CreatedAt            time.Time       `db:"created_at"`
}

// CustomerCreditAccount is derived from trips and payments, never stored.
type CustomerCreditAccount struct {
	CustomerID      int64
	TotalCredit     decimal.Decimal
	TotalPaid       decimal.Decimal
	RemainingCredit decimal.Decimal
}

type Supplier struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type SupplierTxType string

const (
	SupplierSupply     SupplierTxType = "supply"
	SupplierPayment    SupplierTxType = "payment"
	SupplierAdjustment SupplierTxType = "adjustment"
)

// SupplierTransaction amount is signed: supply is negative (the shed owes
// more), payment is positive.
type SupplierTransaction struct {
	ID          int64           `db:"id"`
	SupplierID  int64           `db:"supplier_id"`
	Type        SupplierTxType  `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Item        string          `db:"item"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

type SupplierAccount struct {
	Supplier      Supplier
	WalletBalance decimal.Decimal
	Transactions  []SupplierTransaction
}

type ItemBalance struct {
	Item   string
	Amount decimal.Decimal
}

type EmployeeWalletType string

const (
	EmployeeSalaryAccrued EmployeeWalletType = "salary_accrued"
	EmployeeSalaryDeduct  EmployeeWalletType = "salary_deducted"
	EmployeeAdjustment    EmployeeWalletType = "adjustment"
)

type EmployeeWalletEntry struct {
	ID          int64              `db:"id"`
	EmployeeID  int64              `db:"employee_id"`
	Type        EmployeeWalletType `db:"type"`
	Amount      decimal.Decimal    `db:"amount"`
	Description string             `db:"description"`
	CreatedAt   time.Time          `db:"created_at"`
}

type EmployeePending struct {
	EmployeeID   int64
	EmployeeName string
	PendingFuel  decimal.Decimal
	SetCash      decimal.Decimal
	Total        decimal.Decimal
}

type PendingDetails struct {
	TotalPendingFuel       decimal.Decimal
	TotalSetCashTaken      decimal.Decimal
	TotalPendingAmount     decimal.Decimal
	PendingByEmployee      []EmployeePending
	VehicleLogsWithSetCash []SetCashAdvance
}

// SheetSummary is what a saved trip sheet reports back to the operator.
type SheetSummary struct {
	SheetID        uuid.UUID
	Records        []TripRecord
	GrossFloat     decimal.Decimal
	NetOfExpenses  decimal.Decimal
	SalaryMode     SalaryMode
	SalaryDeducted decimal.Decimal
	PendingSalary  decimal.Decimal
	SalarySummary  string
	ClosingBalance decimal.Decimal
}

type WalletTransactionInput struct {
	Type          WalletTxType
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string
	// SettleAggregate runs a payment_sent amount through settlement against
	// every pending fuel purchase and cash advance.
	SettleAggregate bool
	// FuelLogIDs restricts settlement to these fuel purchases.
	FuelLogIDs []int64
	CreatedBy  int64
}

type CreditPaymentInput struct {
	CustomerID           int64
	Amount               decimal.Decimal
	Date                 time.Time
	Method               string
	Reference            string
	Notes                string
	OriginalCreditAmount *decimal.Decimal
	CreatedBy            int64
}

type CreditPaymentResult struct {
	Payment CreditPayment
	Account CustomerCreditAccount
	// Warning is set when the client saw a different remaining credit.
	Warning string
}

type EmployeeWallet struct {
	Employee     Employee
	CarryForward decimal.Decimal
	AsOf         time.Time
	Entries      []EmployeeWalletEntry
}
