package model

import "fmt"

// Statement - одно DDL-выражение схемы.
type Statement struct {
	Table string
	SQL   string
}

// Имена таблиц в порядке создания (родительские раньше зависимых).
var Tables = []string{
	"Entities",
	"Contacts",
	"Deals",
	"Interactions",
	"AccessLevels",
	"AccessDefinitions",
	"EntityAccess",
	"Orders",
	"SupportTickets",
}

// Первые семь таблиц совпадают с DDL существующих файлов базы.
// "ON UPDATE CURRENT_TIMESTAMP" у Deals.UpdatedAt не поддерживается ни sqlite,
// ни postgres; обновление метки делает GORM (autoUpdateTime).
var sqliteSchema = []Statement{
	{"Entities", `CREATE TABLE Entities (
    EntityID INTEGER PRIMARY KEY AUTOINCREMENT,
    FirstName TEXT NOT NULL,
    LastName TEXT NOT NULL,
    Email TEXT NOT NULL UNIQUE,
    Phone TEXT,
    Address TEXT,
    City TEXT,
    State TEXT,
    ZipCode TEXT,
    Country TEXT,
    CreatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    Username TEXT,
    Password TEXT,
    Role TEXT
  )`},
	{"Contacts", `CREATE TABLE Contacts (
    ContactID INTEGER PRIMARY KEY AUTOINCREMENT,
    EntityID INTEGER,
    ContactType TEXT,
    ContactDate DATE,
    Notes TEXT,
    CreatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY(EntityID) REFERENCES Entities(EntityID)
  )`},
	{"Deals", `CREATE TABLE Deals (
    DealID INTEGER PRIMARY KEY AUTOINCREMENT,
    EntityID INTEGER,
    DealType TEXT,
    DealDate DATE,
    Amount DECIMAL(10, 2),
    CreatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UpdatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY(EntityID) REFERENCES Entities(EntityID)
  )`},
	{"Interactions", `CREATE TABLE Interactions (
    InteractionID INTEGER PRIMARY KEY AUTOINCREMENT,
    EntityID INTEGER,
    InteractionType TEXT,
    InteractionDate DATE,
    Notes TEXT,
    CreatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY(EntityID) REFERENCES Entities(EntityID)
  )`},
	{"AccessLevels", `CREATE TABLE AccessLevels (
    LevelID INTEGER PRIMARY KEY AUTOINCREMENT,
    LevelName TEXT NOT NULL
  )`},
	{"AccessDefinitions", `CREATE TABLE AccessDefinitions (
    DefinitionID INTEGER PRIMARY KEY AUTOINCREMENT,
    LevelID INTEGER,
    EntityType TEXT,
    CanRead BOOLEAN,
    CanWrite BOOLEAN,
    CanDelete BOOLEAN,
    FOREIGN KEY(LevelID) REFERENCES AccessLevels(LevelID)
  )`},
	{"EntityAccess", `CREATE TABLE EntityAccess (
    AccessID INTEGER PRIMARY KEY AUTOINCREMENT,
    EntityID INTEGER,
    LevelID INTEGER,
    FOREIGN KEY(EntityID) REFERENCES Entities(EntityID),
    FOREIGN KEY(LevelID) REFERENCES AccessLevels(LevelID)
  )`},
	{"Orders", `CREATE TABLE Orders (
    OrderID INTEGER PRIMARY KEY AUTOINCREMENT,
    EntityID INTEGER,
    Quantity INTEGER,
    TotalAmount DECIMAL(10, 2),
    OrderDate DATE,
    Status TEXT,
    CreatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY(EntityID) REFERENCES Entities(EntityID)
  )`},
	{"SupportTickets", `CREATE TABLE SupportTickets (
    SupportID INTEGER PRIMARY KEY AUTOINCREMENT,
    EntityID INTEGER,
    Subject TEXT,
    Description TEXT,
    Status TEXT,
    CreatedAt TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    ClosedAt TIMESTAMP,
    FOREIGN KEY(EntityID) REFERENCES Entities(EntityID)
  )`},
}

// Для postgres идентификаторы в кавычках, чтобы сохранить регистр имён.
var postgresSchema = []Statement{
	{"Entities", `CREATE TABLE "Entities" (
    "EntityID" SERIAL PRIMARY KEY,
    "FirstName" TEXT NOT NULL,
    "LastName" TEXT NOT NULL,
    "Email" TEXT NOT NULL UNIQUE,
    "Phone" TEXT,
    "Address" TEXT,
    "City" TEXT,
    "State" TEXT,
    "ZipCode" TEXT,
    "Country" TEXT,
    "CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    "Username" TEXT,
    "Password" TEXT,
    "Role" TEXT
  )`},
	{"Contacts", `CREATE TABLE "Contacts" (
    "ContactID" SERIAL PRIMARY KEY,
    "EntityID" INTEGER REFERENCES "Entities"("EntityID"),
    "ContactType" TEXT,
    "ContactDate" DATE,
    "Notes" TEXT,
    "CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
  )`},
	{"Deals", `CREATE TABLE "Deals" (
    "DealID" SERIAL PRIMARY KEY,
    "EntityID" INTEGER REFERENCES "Entities"("EntityID"),
    "DealType" TEXT,
    "DealDate" DATE,
    "Amount" DECIMAL(10, 2),
    "CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    "UpdatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
  )`},
	{"Interactions", `CREATE TABLE "Interactions" (
    "InteractionID" SERIAL PRIMARY KEY,
    "EntityID" INTEGER REFERENCES "Entities"("EntityID"),
    "InteractionType" TEXT,
    "InteractionDate" DATE,
    "Notes" TEXT,
    "CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
  )`},
	{"AccessLevels", `CREATE TABLE "AccessLevels" (
    "LevelID" SERIAL PRIMARY KEY,
    "LevelName" TEXT NOT NULL
  )`},
	{"AccessDefinitions", `CREATE TABLE "AccessDefinitions" (
    "DefinitionID" SERIAL PRIMARY KEY,
    "LevelID" INTEGER REFERENCES "AccessLevels"("LevelID"),
    "EntityType" TEXT,
    "CanRead" BOOLEAN,
    "CanWrite" BOOLEAN,
    "CanDelete" BOOLEAN
  )`},
	{"EntityAccess", `CREATE TABLE "EntityAccess" (
    "AccessID" SERIAL PRIMARY KEY,
    "EntityID" INTEGER REFERENCES "Entities"("EntityID"),
    "LevelID" INTEGER REFERENCES "AccessLevels"("LevelID")
  )`},
	{"Orders", `CREATE TABLE "Orders" (
    "OrderID" SERIAL PRIMARY KEY,
    "EntityID" INTEGER REFERENCES "Entities"("EntityID"),
    "Quantity" INTEGER,
    "TotalAmount" DECIMAL(10, 2),
    "OrderDate" DATE,
    "Status" TEXT,
    "CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
  )`},
	{"SupportTickets", `CREATE TABLE "SupportTickets" (
    "SupportID" SERIAL PRIMARY KEY,
    "EntityID" INTEGER REFERENCES "Entities"("EntityID"),
    "Subject" TEXT,
    "Description" TEXT,
    "Status" TEXT,
    "CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    "ClosedAt" TIMESTAMP
  )`},
}

// Schema возвращает DDL для диалекта GORM ("sqlite" или "postgres").
func Schema(dialect string) ([]Statement, error) {
	switch dialect {
	case "sqlite":
		return sqliteSchema, nil
	case "postgres":
		return postgresSchema, nil
	default:
		return nil, fmt.Errorf("no schema for dialect %q", dialect)
	}
}
