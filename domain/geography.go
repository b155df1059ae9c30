package domain

import (
	"context"
	"time"
)

type GeoLevel string

const (
	LevelCounty      GeoLevel = "county"
	LevelSubCounty   GeoLevel = "subCounty"
	LevelLocation    GeoLevel = "location"
	LevelSubLocation GeoLevel = "subLocation"
	LevelVillage     GeoLevel = "village"
)

// GeoLevels lists the hierarchy from the root down.
var GeoLevels = []GeoLevel{LevelCounty, LevelSubCounty, LevelLocation, LevelSubLocation, LevelVillage}

func (l GeoLevel) Valid() bool {
	for _, v := range GeoLevels {
		if v == l {
			return true
		}
	}
	return false
}

func (l GeoLevel) Parent() (GeoLevel, bool) {
	for i, v := range GeoLevels {
		if v == l && i > 0 {
			return GeoLevels[i-1], true
		}
	}
	return "", false
}

// IDField is the JSON name used when the level is referenced as a parent.
func (l GeoLevel) IDField() string { return string(l) + "Id" }

func (l GeoLevel) Label() string {
	switch l {
	case LevelCounty:
		return "County"
	case LevelSubCounty:
		return "Sub-County"
	case LevelLocation:
		return "Location"
	case LevelSubLocation:
		return "Sub-Location"
	case LevelVillage:
		return "Village"
	}
	return string(l)
}

const MaxGeoNameLength = 100

type County struct {
	CountyID  int       `gorm:"primaryKey;autoIncrement" json:"countyId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (County) TableName() string { return "counties" }

type SubCounty struct {
	SubCountyID int       `gorm:"primaryKey;autoIncrement" json:"subCountyId"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	CountyID    int       `gorm:"not null;index" json:"countyId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SubCounty) TableName() string { return "sub_counties" }

type Location struct {
	LocationID  int       `gorm:"primaryKey;autoIncrement" json:"locationId"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	SubCountyID int       `gorm:"not null;index" json:"subCountyId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Location) TableName() string { return "locations" }

type SubLocation struct {
	SubLocationID int       `gorm:"primaryKey;autoIncrement" json:"subLocationId"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	LocationID    int       `gorm:"not null;index" json:"locationId"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SubLocation) TableName() string { return "sub_locations" }

type Village struct {
	VillageID     int       `gorm:"primaryKey;autoIncrement" json:"villageId"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	SubLocationID int       `gorm:"not null;index" json:"subLocationId"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Village) TableName() string { return "villages" }

// Option is one entry of a dropdown.
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GeoNode is a row of any hierarchy level with its ancestry names and child count.
type GeoNode struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	ParentID        int    `json:"parentId,omitempty"`
	CountyName      string `json:"countyName,omitempty"`
	SubCountyName   string `json:"subCountyName,omitempty"`
	LocationName    string `json:"locationName,omitempty"`
	SubLocationName string `json:"subLocationName,omitempty"`
	ChildCount      int64  `json:"childCount"`
}

type GeoInput struct {
	Name     string `json:"name" form:"name" valid:"required~Name is required,stringlength(1|100)~Name cannot exceed 100 characters"`
	ParentID int    `json:"parentId" form:"parentId" valid:"-"`
}

type CountyOverview struct {
	County      GeoNode   `json:"county"`
	SubCounties []GeoNode `json:"subCounties"`
}

type GeographyRepo interface {
	Create(ctx context.Context, level GeoLevel, name string, parentID int) (int, error)
	Update(ctx context.Context, level GeoLevel, id int, name string, parentID int) error
	Delete(ctx context.Context, level GeoLevel, id int) error
	Get(ctx context.Context, level GeoLevel, id int) (*GeoNode, error)
	List(ctx context.Context, level GeoLevel) ([]GeoNode, error)
	ListUnderCounty(ctx context.Context, level GeoLevel, countyID int) ([]GeoNode, error)
	Children(ctx context.Context, level GeoLevel, parentID int) ([]Option, error)
	Count(ctx context.Context, level GeoLevel) (int64, error)
	Exists(ctx context.Context, level GeoLevel, id int) (bool, error)
}

type GeographyUseCase interface {
	Create(ctx context.Context, level GeoLevel, in GeoInput) (int, error)
	Update(ctx context.Context, level GeoLevel, id int, in GeoInput) error
	Delete(ctx context.Context, level GeoLevel, id int) error
	Get(ctx context.Context, level GeoLevel, id int) (*GeoNode, error)
	List(ctx context.Context, level GeoLevel) ([]GeoNode, error)
	ListUnderCounty(ctx context.Context, level GeoLevel, countyID int) ([]GeoNode, error)
	Options(ctx context.Context, level GeoLevel, parentID int) ([]Option, error)
	Count(ctx context.Context, level GeoLevel) (int64, error)
	ManageCounty(ctx context.Context, countyID int) (*CountyOverview, error)
}
