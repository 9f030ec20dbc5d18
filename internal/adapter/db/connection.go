package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/KaushVerse/nginx-docker/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true&clientFoundRows=true"
	}

	db, err := sqlx.Connect("mysql", BuildDSN(conf.DbUser, conf.DbPassword, conf.DbHost, conf.DbPort, conf.DbName, params))
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	return db, nil
}

func BuildDSN(user, password, host, port, database, params string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}
