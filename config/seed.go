package config

import (
	_ "embed"
	"fmt"

	"sais/domain"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedFile []byte

type SeedData struct {
	Genders         []string      `yaml:"genders"`
	MaritalStatuses []string      `yaml:"maritalStatuses"`
	Programs        []string      `yaml:"programs"`
	Officers        []seedOfficer `yaml:"officers"`
	Counties        []seedCounty  `yaml:"counties"`
}

type seedOfficer struct {
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
}

type seedCounty struct {
	Name        string          `yaml:"name"`
	SubCounties []seedSubCounty `yaml:"subCounties"`
}

type seedSubCounty struct {
	Name      string         `yaml:"name"`
	Locations []seedLocation `yaml:"locations"`
}

type seedLocation struct {
	Name         string            `yaml:"name"`
	SubLocations []seedSubLocation `yaml:"subLocations"`
}

type seedSubLocation struct {
	Name     string   `yaml:"name"`
	Villages []string `yaml:"villages"`
}

func LoadSeedData() (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(seedFile, &data); err != nil {
		return nil, fmt.Errorf("could not parse seed data: %w", err)
	}
	return &data, nil
}

// SeedDB inserts the reference data that is missing. Running it twice changes nothing.
func SeedDB(db *gorm.DB) error {
	data, err := LoadSeedData()
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, name := range data.Genders {
			if err := tx.Where(&domain.GenderCategory{Name: name}).FirstOrCreate(&domain.GenderCategory{Name: name}).Error; err != nil {
				return fmt.Errorf("seed gender %s: %w", name, err)
			}
		}
		for _, name := range data.MaritalStatuses {
			if err := tx.Where(&domain.MaritalStatus{Name: name}).FirstOrCreate(&domain.MaritalStatus{Name: name}).Error; err != nil {
				return fmt.Errorf("seed marital status %s: %w", name, err)
			}
		}
		for _, name := range data.Programs {
			if err := tx.Where(&domain.SocialAssistanceProgram{Name: name}).FirstOrCreate(&domain.SocialAssistanceProgram{Name: name}).Error; err != nil {
				return fmt.Errorf("seed program %s: %w", name, err)
			}
		}
		for _, o := range data.Officers {
			officer := domain.Officer{Name: o.Name, Designation: o.Designation}
			if err := tx.Where(&domain.Officer{Name: o.Name}).FirstOrCreate(&officer).Error; err != nil {
				return fmt.Errorf("seed officer %s: %w", o.Name, err)
			}
		}
		for _, c := range data.Counties {
			if err := seedCountyTree(tx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	GetLogrusInstance().Info("Seed data applied")
	return nil
}

func seedCountyTree(tx *gorm.DB, c seedCounty) error {
	county := domain.County{Name: c.Name}
	if err := tx.Where(&domain.County{Name: c.Name}).FirstOrCreate(&county).Error; err != nil {
		return fmt.Errorf("seed county %s: %w", c.Name, err)
	}

	for _, sc := range c.SubCounties {
		subCounty := domain.SubCounty{Name: sc.Name, CountyID: county.CountyID}
		if err := tx.Where(&subCounty).FirstOrCreate(&subCounty).Error; err != nil {
			return fmt.Errorf("seed sub-county %s: %w", sc.Name, err)
		}

		for _, l := range sc.Locations {
			location := domain.Location{Name: l.Name, SubCountyID: subCounty.SubCountyID}
			if err := tx.Where(&location).FirstOrCreate(&location).Error; err != nil {
				return fmt.Errorf("seed location %s: %w", l.Name, err)
			}

			for _, sl := range l.SubLocations {
				subLocation := domain.SubLocation{Name: sl.Name, LocationID: location.LocationID}
				if err := tx.Where(&subLocation).FirstOrCreate(&subLocation).Error; err != nil {
					return fmt.Errorf("seed sub-location %s: %w", sl.Name, err)
				}

				for _, v := range sl.Villages {
					village := domain.Village{Name: v, SubLocationID: subLocation.SubLocationID}
					if err := tx.Where(&village).FirstOrCreate(&village).Error; err != nil {
						return fmt.Errorf("seed village %s: %w", v, err)
					}
				}
			}
		}
	}
	return nil
}
