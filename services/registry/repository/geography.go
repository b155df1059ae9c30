package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sais/domain"

	"gorm.io/gorm"
)

type geoTable struct {
	table     string
	key       string
	parentKey string
	nameAlias string
	child     string
}

func (t geoTable) alias() string { return "p_" + t.table }

var geoTables = map[domain.GeoLevel]geoTable{
	domain.LevelCounty:      {table: "counties", key: "county_id", nameAlias: "county_name", child: "sub_counties"},
	domain.LevelSubCounty:   {table: "sub_counties", key: "sub_county_id", parentKey: "county_id", nameAlias: "sub_county_name", child: "locations"},
	domain.LevelLocation:    {table: "locations", key: "location_id", parentKey: "sub_county_id", nameAlias: "location_name", child: "sub_locations"},
	domain.LevelSubLocation: {table: "sub_locations", key: "sub_location_id", parentKey: "location_id", nameAlias: "sub_location_name", child: "villages"},
	domain.LevelVillage:     {table: "villages", key: "village_id", parentKey: "sub_location_id", nameAlias: "village_name", child: "applicants"},
}

type geographyRepository struct {
	db *gorm.DB
}

func NewGeographyRepository(database *gorm.DB) domain.GeographyRepo {
	return &geographyRepository{
		db: database,
	}
}

func tableFor(level domain.GeoLevel) (geoTable, error) {
	t, ok := geoTables[level]
	if !ok {
		return geoTable{}, domain.NewInternalError(fmt.Sprintf("unknown level %q", level), nil)
	}
	return t, nil
}

func (gr *geographyRepository) Create(ctx context.Context, level domain.GeoLevel, name string, parentID int) (int, error) {
	var (
		model any
		id    func() int
	)

	switch level {
	case domain.LevelCounty:
		m := &domain.County{Name: name}
		model, id = m, func() int { return m.CountyID }
	case domain.LevelSubCounty:
		m := &domain.SubCounty{Name: name, CountyID: parentID}
		model, id = m, func() int { return m.SubCountyID }
	case domain.LevelLocation:
		m := &domain.Location{Name: name, SubCountyID: parentID}
		model, id = m, func() int { return m.LocationID }
	case domain.LevelSubLocation:
		m := &domain.SubLocation{Name: name, LocationID: parentID}
		model, id = m, func() int { return m.SubLocationID }
	case domain.LevelVillage:
		m := &domain.Village{Name: name, SubLocationID: parentID}
		model, id = m, func() int { return m.VillageID }
	default:
		_, err := tableFor(level)
		return 0, err
	}

	if err := conn(ctx, gr.db).Create(model).Error; err != nil {
		return 0, translateError(err, opWrite)
	}
	return id(), nil
}

func (gr *geographyRepository) Update(ctx context.Context, level domain.GeoLevel, id int, name string, parentID int) error {
	t, err := tableFor(level)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":       name,
		"updated_at": time.Now(),
	}
	if t.parentKey != "" {
		updates[t.parentKey] = parentID
	}

	res := conn(ctx, gr.db).Table(t.table).Where(t.key+" = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(level.Label(), id)
	}
	return nil
}

func (gr *geographyRepository) Delete(ctx context.Context, level domain.GeoLevel, id int) error {
	t, err := tableFor(level)
	if err != nil {
		return err
	}

	res := conn(ctx, gr.db).Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.table, t.key), id)
	if res.Error != nil {
		return translateError(res.Error, opDelete)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(level.Label(), id)
	}
	return nil
}

// nodeQuery selects rows of one level joined to every ancestor, with the child count.
func (gr *geographyRepository) nodeQuery(ctx context.Context, level domain.GeoLevel) (*gorm.DB, error) {
	t, err := tableFor(level)
	if err != nil {
		return nil, err
	}

	cols := []string{"n." + t.key + " AS id", "n.name AS name"}
	if t.parentKey != "" {
		cols = append(cols, "n."+t.parentKey+" AS parent_id")
	}

	q := conn(ctx, gr.db).Table(t.table + " AS n")
	alias, cur := "n", t
	for lvl, ok := level.Parent(); ok; lvl, ok = lvl.Parent() {
		p := geoTables[lvl]
		q = q.Joins(fmt.Sprintf("JOIN %s AS %s ON %s.%s = %s.%s", p.table, p.alias(), p.alias(), p.key, alias, cur.parentKey))
		cols = append(cols, fmt.Sprintf("%s.name AS %s", p.alias(), p.nameAlias))
		alias, cur = p.alias(), p
	}
	cols = append(cols, fmt.Sprintf("(SELECT COUNT(*) FROM %s c WHERE c.%s = n.%s) AS child_count", t.child, t.key, t.key))

	return q.Select(strings.Join(cols, ", ")), nil
}

func (gr *geographyRepository) Get(ctx context.Context, level domain.GeoLevel, id int) (*domain.GeoNode, error) {
	q, err := gr.nodeQuery(ctx, level)
	if err != nil {
		return nil, err
	}

	var node domain.GeoNode
	res := q.Where("n."+geoTables[level].key+" = ?", id).Scan(&node)
	if res.Error != nil {
		return nil, translateError(res.Error, opRead)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError(level.Label(), id)
	}
	return &node, nil
}

func (gr *geographyRepository) List(ctx context.Context, level domain.GeoLevel) ([]domain.GeoNode, error) {
	q, err := gr.nodeQuery(ctx, level)
	if err != nil {
		return nil, err
	}

	var nodes []domain.GeoNode
	if err := q.Order("n.name, n." + geoTables[level].key).Scan(&nodes).Error; err != nil {
		return nil, translateError(err, opRead)
	}
	return nodes, nil
}

func (gr *geographyRepository) ListUnderCounty(ctx context.Context, level domain.GeoLevel, countyID int) ([]domain.GeoNode, error) {
	if level == domain.LevelCounty {
		return nil, domain.NewInternalError("counties have no county", nil)
	}
	q, err := gr.nodeQuery(ctx, level)
	if err != nil {
		return nil, err
	}

	var nodes []domain.GeoNode
	countyAlias := geoTables[domain.LevelCounty].alias()
	if err := q.Where(countyAlias+".county_id = ?", countyID).
		Order("n.name, n." + geoTables[level].key).
		Scan(&nodes).Error; err != nil {
		return nil, translateError(err, opRead)
	}
	return nodes, nil
}

func (gr *geographyRepository) Children(ctx context.Context, level domain.GeoLevel, parentID int) ([]domain.Option, error) {
	t, err := tableFor(level)
	if err != nil {
		return nil, err
	}

	q := conn(ctx, gr.db).Table(t.table).Select(t.key + " AS id, name")
	if t.parentKey != "" {
		q = q.Where(t.parentKey+" = ?", parentID)
	}

	var options []domain.Option
	if err := q.Order("name, " + t.key).Scan(&options).Error; err != nil {
		return nil, translateError(err, opRead)
	}
	return options, nil
}

func (gr *geographyRepository) Count(ctx context.Context, level domain.GeoLevel) (int64, error) {
	t, err := tableFor(level)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := conn(ctx, gr.db).Table(t.table).Count(&n).Error; err != nil {
		return 0, translateError(err, opRead)
	}
	return n, nil
}

func (gr *geographyRepository) Exists(ctx context.Context, level domain.GeoLevel, id int) (bool, error) {
	t, err := tableFor(level)
	if err != nil {
		return false, err
	}

	var n int64
	if err := conn(ctx, gr.db).Table(t.table).Where(t.key+" = ?", id).Count(&n).Error; err != nil {
		return false, translateError(err, opRead)
	}
	return n > 0, nil
}
