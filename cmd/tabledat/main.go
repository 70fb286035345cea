package main

import (
	"fmt"
	"os"

	runner "github.com/mgutz/tabledat/sqlx-runner"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// driverNames maps --driver to registered database/sql driver names.
var driverNames = map[string]string{
	"postgres": "postgres",
	"mysql":    "mysql",
	"sqlite":   "sqlite",
}

func openConnection(options *CLIArgs) (*runner.DB, error) {
	driver, ok := driverNames[options.Driver]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q", options.Driver)
	}
	return runner.NewDBFromString(driver, options.DSN)
}

// main is THE entry point
func main() {
	os.Exit(execute())
}

func execute() int {
	options, err := parseArgs()
	if err != nil {
		logger.Error(err.Error() + "\n")
		return 1
	}

	ctx := &AppContext{Options: options, Out: os.Stdout}
	if !options.Dry {
		db, err := openConnection(options)
		if err != nil {
			logger.Error(err.Error() + "\n")
			return 1
		}
		defer db.Close()

		store, err := configureCache(db, options)
		if err != nil {
			logger.Error(err.Error() + "\n")
			return 1
		}
		if store != nil {
			defer store.Close()
		}
		ctx.Conn = db
	}

	if err := run(ctx); err != nil {
		logger.Error(err.Error() + "\n")
		return 1
	}
	return 0
}
