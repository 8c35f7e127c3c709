package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/leadiaz/compra-tu-auto-app-backend/config"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/db"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/util"
	"gorm.io/gorm"
)

// Seeds a development database with an admin account, a small vehicle
// catalog and two dealerships with published offers. Safe to run twice:
// existing rows are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	gdb := db.GetDB()

	admin, err := seedUser(gdb, "admin@compratuauto.com", "admin1234", "Root", "Admin", "ADMIN")
	if err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	fmt.Printf("Admin user ready: %s (id=%d)\n", admin.Email, admin.ID)

	vehicles := []model.Vehicle{
		{Brand: "Toyota", Model: "Corolla", ModelYear: 2024},
		{Brand: "Ford", Model: "Focus", ModelYear: 2023},
		{Brand: "Fiat", Model: "Cronos", ModelYear: 2024},
		{Brand: "Volkswagen", Model: "Gol", ModelYear: 2022},
	}
	for i := range vehicles {
		if err := seedVehicle(gdb, &vehicles[i]); err != nil {
			log.Fatal("Failed to seed vehicle:", err)
		}
	}
	fmt.Printf("Vehicle catalog ready: %d vehicles\n", len(vehicles))

	dealerships := []struct {
		dealership model.Dealership
		userEmail  string
		offers     []model.Offer
	}{
		{
			dealership: model.Dealership{
				Name:    "Autos del Sur",
				TaxID:   "30-11111111-1",
				Email:   "ventas@autosdelsur.com",
				Address: "Av. Mitre 1500, Avellaneda",
			},
			userEmail: "sur@compratuauto.com",
			offers: []model.Offer{
				{VehicleID: vehicles[0].ID, Stock: 3, Price: 25000000, Currency: "ARS"},
				{VehicleID: vehicles[1].ID, Stock: 2, Price: 21000000, Currency: "ARS"},
			},
		},
		{
			dealership: model.Dealership{
				Name:    "Norte Motors",
				TaxID:   "30-22222222-2",
				Email:   "info@nortemotors.com",
				Address: "Av. Maipú 3200, Vicente López",
			},
			userEmail: "norte@compratuauto.com",
			offers: []model.Offer{
				{VehicleID: vehicles[0].ID, Stock: 1, Price: 24500000, Currency: "ARS"},
				{VehicleID: vehicles[2].ID, Stock: 5, Price: 19000000, Currency: "ARS"},
			},
		},
	}

	for _, entry := range dealerships {
		d := entry.dealership
		d.Active = true
		if err := seedDealership(gdb, &d); err != nil {
			log.Fatal("Failed to seed dealership:", err)
		}

		user, err := seedUser(gdb, entry.userEmail, "dealer1234", d.Name, "Ventas", "DEALERSHIP")
		if err != nil {
			log.Fatal("Failed to seed dealership user:", err)
		}
		if user.DealershipID == nil {
			if err := gdb.Model(&model.User{}).
				Where("id = ?", user.ID).
				Update("dealership_id", d.ID).Error; err != nil {
				log.Fatal("Failed to link dealership user:", err)
			}
		}

		for _, offer := range entry.offers {
			offer.DealershipID = d.ID
			if err := seedOffer(gdb, &offer); err != nil {
				log.Fatal("Failed to seed offer:", err)
			}
		}
		fmt.Printf("Dealership ready: %s with %d offers\n", d.Name, len(entry.offers))
	}

	fmt.Println("Seed completed successfully!")
}

func seedUser(gdb *gorm.DB, email, password, firstName, lastName, userType string) (*model.User, error) {
	var existing model.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.NewUser(email, hash, firstName, lastName, userType)
	if err := gdb.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func seedVehicle(gdb *gorm.DB, vehicle *model.Vehicle) error {
	var existing model.Vehicle
	err := gdb.Where("brand = ? AND model = ? AND model_year = ?",
		vehicle.Brand, vehicle.Model, vehicle.ModelYear).First(&existing).Error
	if err == nil {
		*vehicle = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(vehicle).Error
}

func seedDealership(gdb *gorm.DB, dealership *model.Dealership) error {
	var existing model.Dealership
	err := gdb.Where("tax_id = ?", dealership.TaxID).First(&existing).Error
	if err == nil {
		*dealership = existing
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(dealership).Error
}

func seedOffer(gdb *gorm.DB, offer *model.Offer) error {
	var existing model.Offer
	err := gdb.Where("dealership_id = ? AND vehicle_id = ?",
		offer.DealershipID, offer.VehicleID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(offer).Error
}
