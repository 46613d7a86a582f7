package gopaging

import (
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// gormMock opens a gorm connection for one dialect on top of go-sqlmock.
type gormMock func() (string, *gorm.DB, sqlmock.Sqlmock, error)

var _gormMocks = []gormMock{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("mysql", func(conn *sql.DB) gorm.Dialector {
		return mysql.New(mysql.Config{
			Conn:                      conn,
			SkipInitializeWithVersion: true,
		})
	})
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	return openGORMMock("postgres", func(conn *sql.DB) gorm.Dialector {
		return postgres.New(postgres.Config{
			Conn: conn,
		})
	})
}

func openGORMMock(dialect string, dialector func(*sql.DB) gorm.Dialector) (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	db, err := gorm.Open(dialector(mockDB), &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return dialect, db.Debug(), mock, nil
}

// quotedUsers matches the users table name quoted by either dialect.
const quotedUsers = "[`'\"]users[`'\"]"
