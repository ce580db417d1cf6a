package store

import "time"

// VehicleType distinguishes the two stocked vehicle classes.
type VehicleType string

const (
	TypeBike         VehicleType = "Bike"
	TypeThreeWheeler VehicleType = "Three Wheeler"
)

// VehicleStatus tracks where a vehicle sits in its sales lifecycle.
type VehicleStatus string

const (
	StatusAvailable   VehicleStatus = "Available"
	StatusSold        VehicleStatus = "Sold"
	StatusUnderRepair VehicleStatus = "Under Repair"
)

// PaymentMethod enumerates accepted settlement methods.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "Cash"
	PayCreditCard   PaymentMethod = "Credit Card"
	PayBankTransfer PaymentMethod = "Bank Transfer"
	PayCheque       PaymentMethod = "Cheque"
)

// RepairState is the repair marker carried on the vehicle itself.
type RepairState string

const (
	RepairNone            RepairState = "None"
	RepairStatePending    RepairState = "Pending"
	RepairStateInProgress RepairState = "In Progress"
	RepairStateCompleted  RepairState = "Completed"
)

// RepairStatus is the lifecycle status of a repair job.
type RepairStatus string

const (
	RepairPending    RepairStatus = "Pending"
	RepairInProgress RepairStatus = "In Progress"
	RepairCompleted  RepairStatus = "Completed"
	RepairCancelled  RepairStatus = "Cancelled"
)

// RepairPriority ranks how urgently a repair job needs attention.
type RepairPriority string

const (
	PriorityLow    RepairPriority = "Low"
	PriorityMedium RepairPriority = "Medium"
	PriorityHigh   RepairPriority = "High"
	PriorityUrgent RepairPriority = "Urgent"
)

// SupplierStatus marks whether a supplier is currently usable.
type SupplierStatus string

const (
	SupplierActive    SupplierStatus = "Active"
	SupplierPending   SupplierStatus = "Pending"
	SupplierSuspended SupplierStatus = "Suspended"
)

// Vehicle is a stocked vehicle keyed by its registration number. The
// customer contact columns are denormalized copies of the owning Customer
// row and are kept in sync by UpdateCustomer.
type Vehicle struct {
	Number        string        `json:"number"`
	CustomerID    int64         `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	Address       string        `json:"address"`
	NIC           string        `json:"nic"`
	Phone         string        `json:"phone"`
	Type          VehicleType   `json:"type"`
	Model         string        `json:"model"`
	PurchaseDate  time.Time     `json:"purchase_date"`
	Payment       float64       `json:"payment"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	EmployeeID    int           `json:"employee_id"`
	Status        VehicleStatus `json:"status"`
	RepairCost    float64       `json:"repair_cost"`
	RepairState   RepairState   `json:"repair_state"`
}

// Customer owns zero or more vehicles via CustomerID.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	NIC     string `json:"nic"`
	Phone   string `json:"phone"`
}

// Repair is a workshop job against a single vehicle.
type Repair struct {
	ID            string         `json:"id"`
	VehicleNumber string         `json:"vehicle_number"`
	StartDate     time.Time      `json:"start_date"`
	EndDate       time.Time      `json:"end_date"`
	Details       string         `json:"details"`
	Location      string         `json:"location"`
	Amount        float64        `json:"amount"`
	Status        RepairStatus   `json:"status"`
	Priority      RepairPriority `json:"priority"`
}

// Supplier is an independent vendor record with no foreign keys.
type Supplier struct {
	ID            string         `json:"id"`
	CompanyName   string         `json:"company_name"`
	ContactPerson string         `json:"contact_person"`
	Type          string         `json:"type"`
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	Rating        float64        `json:"rating"`
	LastDelivery  time.Time      `json:"last_delivery"`
	TotalOrders   int            `json:"total_orders"`
	Status        SupplierStatus `json:"status"`
}

// BikeModels and ThreeWheelerModels constrain Vehicle.Model by type.
var (
	BikeModels         = []string{"Dio", "Pulsar", "Fz", "Ct100", "Platina"}
	ThreeWheelerModels = []string{"Auto Rickshaw", "Three Wheeler"}
)

// SupplierTypes is the fixed set of vendor categories.
var SupplierTypes = []string{
	"Vehicle Importer",
	"Parts Supplier",
	"Service Provider",
	"Finance Partner",
	"Insurance Provider",
}

// RepairLocations is the fixed set of workshop names.
var RepairLocations = []string{
	"Main Workshop",
	"Service Center A",
	"Service Center B",
	"Mobile Service",
}

// SupplierRatings is the discrete set of permitted rating values.
var SupplierRatings = []float64{3.5, 4.0, 4.2, 4.5, 4.7, 4.8, 4.9, 5.0}

// ValidSupplierRating reports whether r is one of the permitted ratings.
func ValidSupplierRating(r float64) bool {
	for _, v := range SupplierRatings {
		if v == r {
			return true
		}
	}
	return false
}

// ModelMatchesType reports whether model belongs to the given vehicle type.
func ModelMatchesType(t VehicleType, model string) bool {
	models := BikeModels
	if t == TypeThreeWheeler {
		models = ThreeWheelerModels
	}
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}
