package postgres

import "time"

// WorldStateDTO is one ledger entry in the world_state table. The key column
// uses the "C" collation so that ORDER BY and range predicates follow byte
// order, like every other backend.
type WorldStateDTO struct {
	Key       string    `gorm:"column:state_key;primaryKey;type:text COLLATE \"C\""`
	Value     []byte    `gorm:"column:state_value;type:bytea;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the database table name for world state entries.
func (WorldStateDTO) TableName() string {
	return "world_state"
}
