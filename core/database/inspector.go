package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of an existing table.
type ColumnInfo struct {
	Field string
	Type  string
}

// GetTableColumns retrieves the column definitions for a given table.
// A table that does not exist yields an empty slice.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	switch db.Dialector.Name() {
	case "sqlite":
		type sqliteColumn struct {
			Name string
			Type string
		}
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{Field: col.Name, Type: col.Type})
		}
	case "postgres":
		err := db.Raw(
			"SELECT column_name AS field, data_type AS type FROM information_schema.columns WHERE table_name = ? ORDER BY ordinal_position",
			tableName,
		).Scan(&columns).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
	default:
		if !db.Migrator().HasTable(tableName) {
			return nil, nil
		}
		if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
	}

	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingColumns returns the expected columns that are absent from tableName.
func MissingColumns(db *gorm.DB, tableName string, expected []string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[col.Field] = struct{}{}
	}

	var missing []string
	for _, name := range expected {
		if _, ok := present[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
