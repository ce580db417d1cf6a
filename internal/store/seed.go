package store

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/shared"
)

// SeedOptions controls sample data generation.
type SeedOptions struct {
	// Seed feeds the random source; the same seed always produces the
	// same tables.
	Seed int64
	// Vehicles is the fleet size. Defaults to 200.
	Vehicles int
	// Suppliers is the supplier table size. Defaults to 20.
	Suppliers int
	// Year anchors purchase dates; they spread across all 12 months.
	Year int
}

var (
	seedFirstNames = []string{
		"Kamal", "Nimal", "Sunil", "Rohan", "Ajith", "Chaminda", "Pradeep",
		"Nuwan", "Dinesh", "Mahesh", "Saman", "Ruwan", "Gayan", "Chathura",
		"Thilina", "Kasun", "Lahiru", "Nimali", "Sewwandi", "Sandani",
	}
	seedLastNames = []string{
		"Silva", "Perera", "Fernando", "Jayawardena", "Gunasekara",
		"Wijesinghe", "Mendis", "Bandara", "Rathnayaka", "Dissanayaka",
	}
	seedStreets = []string{
		"Galle Road", "Kandy Road", "Negombo Road", "Main Street",
		"Temple Road", "Station Road",
	}
	seedCities = []string{
		"Colombo 03", "Dehiwala", "Mount Lavinia", "Moratuwa", "Kandy",
		"Galle", "Negombo", "Kurunegala", "Anuradhapura", "Matara",
	}
	seedPlatePrefixes = []string{"WP", "CP", "SP", "EP", "NP", "NC", "UP", "SG", "NW"}
	seedBikeSeries    = []string{"CAA", "CAB", "CAC", "CAD", "CAE"}
	seedTrikeSeries   = []string{"PA", "PB", "PC", "PD", "PE"}
	seedCompanies     = []string{
		"Abans PLC", "Singer (Sri Lanka) PLC", "Softlogic Holdings PLC",
		"Hemas Holdings PLC", "John Keells Holdings PLC", "Cargills (Ceylon) PLC",
		"Dialog Axiata PLC", "Lanka IOC PLC", "Dimo Motors",
		"United Motors Lanka", "AMW Group", "David Pieris Motor Company",
		"Ideal Motors", "Micro Cars (Pvt) Ltd", "Stafford Motor Company",
		"Prestige Automobile", "Asia Motor Works", "Central Finance Company PLC",
		"Ceylon Tobacco Company PLC", "Commercial Bank of Ceylon PLC",
	}
	seedPhonePrefixes = []string{"070", "071", "072", "075", "076", "077", "078"}
)

// Seed fills an empty store with a random but internally consistent sample
// fleet through the store's own mutation API, so every generated row passed
// the same checks real input does.
func Seed(s *Store, opts SeedOptions) error {
	if opts.Vehicles <= 0 {
		opts.Vehicles = 200
	}
	if opts.Suppliers <= 0 {
		opts.Suppliers = 20
	}
	if opts.Year <= 0 {
		opts.Year = time.Now().Year()
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	for i := 0; i < opts.Vehicles; i++ {
		v := randomVehicle(rng, opts.Year)
		_, err := s.AddVehicle(v)
		for retries := 0; errors.Is(err, shared.ErrDuplicateKey) && retries < 10; retries++ {
			// Random plates can collide; draw again.
			v = randomVehicle(rng, opts.Year)
			_, err = s.AddVehicle(v)
		}
		if err != nil {
			return fmt.Errorf("seed vehicle %d: %w", i, err)
		}
		if v.Status == StatusUnderRepair {
			start := v.PurchaseDate.AddDate(0, 0, rng.Intn(30))
			repair := Repair{
				VehicleNumber: v.Number,
				StartDate:     start,
				EndDate:       start.AddDate(0, 0, 7),
				Details:       "Repair work for " + v.Number,
				Location:      pick(rng, RepairLocations),
				Amount:        v.RepairCost,
				Status:        RepairInProgress,
				Priority:      pick(rng, []RepairPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}),
			}
			if v.RepairState == RepairStatePending {
				repair.Status = RepairPending
			}
			if _, err := s.AddRepair(repair); err != nil {
				return fmt.Errorf("seed repair for %s: %w", v.Number, err)
			}
		}
	}

	for i := 0; i < opts.Suppliers; i++ {
		company := seedCompanies[i%len(seedCompanies)]
		sup := Supplier{
			CompanyName:   company,
			ContactPerson: pick(rng, seedFirstNames) + " " + pick(rng, seedLastNames),
			Type:          pick(rng, SupplierTypes),
			Address:       fmt.Sprintf("%d, %s, %s", 100+rng.Intn(900), pick(rng, seedStreets), pick(rng, seedCities)),
			Phone:         fmt.Sprintf("011%07d", 2000000+rng.Intn(1000000)),
			Email:         fmt.Sprintf("contact%d@suppliers.lk", i+1),
			Rating:        pick(rng, SupplierRatings),
			LastDelivery:  time.Date(opts.Year, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
			TotalOrders:   5 + rng.Intn(145),
			Status:        pickWeightedStatus(rng),
		}
		if _, err := s.AddSupplier(sup); err != nil {
			return fmt.Errorf("seed supplier %d: %w", i, err)
		}
	}

	return nil
}

func randomVehicle(rng *rand.Rand, year int) Vehicle {
	vtype := TypeBike
	series := seedBikeSeries
	priceLo, priceHi := 400000, 600000
	if rng.Float64() >= 0.7 {
		vtype = TypeThreeWheeler
		series = seedTrikeSeries
		priceLo, priceHi = 800000, 1000000
	}
	model := pick(rng, BikeModels)
	if vtype == TypeThreeWheeler {
		model = pick(rng, ThreeWheelerModels)
	}

	status := pick(rng, []VehicleStatus{StatusAvailable, StatusSold, StatusUnderRepair})
	repairCost := 0.0
	repairState := RepairNone
	switch {
	case status == StatusUnderRepair:
		repairCost = float64(5000 + rng.Intn(45000))
		repairState = RepairStateInProgress
		if rng.Float64() < 0.3 {
			repairState = RepairStatePending
		}
	case status == StatusAvailable && rng.Float64() < 0.2:
		// Back on the floor after a finished repair.
		repairCost = float64(5000 + rng.Intn(45000))
		repairState = RepairStateCompleted
	}

	name := pick(rng, seedFirstNames) + " " + pick(rng, seedLastNames)
	return Vehicle{
		Number:        fmt.Sprintf("%s %s %04d", pick(rng, seedPlatePrefixes), pick(rng, series), 1000+rng.Intn(9000)),
		CustomerName:  name,
		Address:       fmt.Sprintf("%d/%d, %s, %s", 1+rng.Intn(998), 1+rng.Intn(19), pick(rng, seedStreets), pick(rng, seedCities)),
		NIC:           fmt.Sprintf("%02d%03d%04dV", 70+rng.Intn(29), 100+rng.Intn(265), 1000+rng.Intn(9000)),
		Phone:         pick(rng, seedPhonePrefixes) + fmt.Sprintf("%07d", 1000000+rng.Intn(9000000)),
		Type:          vtype,
		Model:         model,
		PurchaseDate:  time.Date(year, time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
		Payment:       float64(priceLo + rng.Intn(priceHi-priceLo)),
		PaymentMethod: pick(rng, []PaymentMethod{PayCash, PayCreditCard, PayBankTransfer, PayCheque}),
		EmployeeID:    1 + rng.Intn(99),
		Status:        status,
		RepairCost:    repairCost,
		RepairState:   repairState,
	}
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}

func pickWeightedStatus(rng *rand.Rand) SupplierStatus {
	switch r := rng.Float64(); {
	case r < 0.8:
		return SupplierActive
	case r < 0.95:
		return SupplierPending
	default:
		return SupplierSuspended
	}
}
