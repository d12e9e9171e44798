package model

// Имена уровней доступа из начального наполнения.
const (
	AccessLevelAdmin = "Admin"
	AccessLevelUser  = "User"
	AccessLevelGuest = "Guest"
)

// Тип сущности, к которому относятся правила доступа.
const EntityTypeEntity = "Entity"

// AccessLevels
type AccessLevel struct {
	ID        int64  `gorm:"column:LevelID;primaryKey;autoIncrement"`
	LevelName string `gorm:"column:LevelName;not null"`
}

func (AccessLevel) TableName() string { return "AccessLevels" }

// Capabilities - тройка прав (чтение, запись, удаление).
type Capabilities struct {
	Read   bool
	Write  bool
	Delete bool
}

// AccessDefinitions - правило уровня для одного типа сущности.
type AccessDefinition struct {
	ID         int64  `gorm:"column:DefinitionID;primaryKey;autoIncrement"`
	LevelID    int64  `gorm:"column:LevelID"`
	EntityType string `gorm:"column:EntityType"`
	CanRead    bool   `gorm:"column:CanRead"`
	CanWrite   bool   `gorm:"column:CanWrite"`
	CanDelete  bool   `gorm:"column:CanDelete"`
}

func (AccessDefinition) TableName() string { return "AccessDefinitions" }

func (d AccessDefinition) Capabilities() Capabilities {
	return Capabilities{Read: d.CanRead, Write: d.CanWrite, Delete: d.CanDelete}
}

// EntityAccess - назначение уровня записи Entity. Исключительность не
// требуется: у записи может быть несколько строк.
type EntityAccess struct {
	ID       int64 `gorm:"column:AccessID;primaryKey;autoIncrement"`
	EntityID int64 `gorm:"column:EntityID"`
	LevelID  int64 `gorm:"column:LevelID"`
}

func (EntityAccess) TableName() string { return "EntityAccess" }
