/**
 *
 * tabledat reads and writes single tables from the command line
 */
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

// userEnvFile is loaded after .env. Neither file overrides variables already
// set in the environment.
const userEnvFile = "~/.tabledat.env"

// Filter are the options narrowing the affected rows.
type Filter struct {
	Where []string `arg:"-w,--where,separate" help:"Predicate COL:OP:VALUE, ANDed" placeholder:"PRED"`
	Or    []string `arg:"--or,separate" help:"Predicate COL:OP:VALUE, ORed after --where" placeholder:"PRED"`
}

// CLIArgs are the command line options.
type CLIArgs struct {
	SelectCmd *struct {
		Filter
		Table   string   `arg:"positional,required"`
		Columns []string `arg:"-c,--columns" help:"Columns to select (default all)" placeholder:"COL"`
		Sort    []string `arg:"-s,--sort,separate" help:"Sort COL:DIR" placeholder:"SORT"`
	} `arg:"subcommand:select" help:"Select rows"`

	InsertCmd *struct {
		Table       string   `arg:"positional,required"`
		Assignments []string `arg:"positional,required" help:"COL=VALUE"`
	} `arg:"subcommand:insert" help:"Insert a row"`

	UpdateCmd *struct {
		Filter
		Table       string   `arg:"positional,required"`
		Assignments []string `arg:"positional,required" help:"COL=VALUE"`
		All         bool     `arg:"--all" help:"Allow updating every row"`
	} `arg:"subcommand:update" help:"Update rows"`

	DeleteCmd *struct {
		Filter
		Table string `arg:"positional,required"`
		All   bool   `arg:"--all" help:"Allow deleting every row"`
	} `arg:"subcommand:delete" help:"Delete rows"`

	SQLCmd *struct {
		Query string `arg:"positional,required" help:"SQL query"`
	} `arg:"subcommand:sql" help:"Run a query and print its rows"`

	Driver string `arg:"--driver,env:tabledat_driver" default:"postgres" help:"postgres, mysql or sqlite"`
	DSN    string `arg:"--dsn,env:tabledat_dsn" help:"Data source name" placeholder:"DSN"`
	Dry    bool   `arg:"--dry" help:"Print SQL without running it"`
	JSON   bool   `arg:"--json" help:"Output rows as JSON"`

	Cache    string        `arg:"--cache,env:tabledat_cache" help:"Cache selects in memory or redis://[:password@]host:port[/namespace]" placeholder:"STORE"`
	CacheTTL time.Duration `arg:"--cacheTTL,env:tabledat_cacheTTL" default:"1m" help:"How long cached selects are replayed"`
}

func loadEnvFiles() error {
	files := []string{".env"}
	userFile, err := homedir.Expand(userEnvFile)
	if err == nil {
		files = append(files, userFile)
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil {
			if os.IsNotExist(err) {
				// do nothing, it's not error if env file does not exist
				continue
			}
			return fmt.Errorf("Cannot load %s file: %w", file, err)
		}
	}
	return nil
}

var (
	rootParser *arg.Parser
)

func parseArgs() (*CLIArgs, error) {
	err := loadEnvFiles()
	if err != nil {
		return nil, err
	}

	var args CLIArgs
	rootParser = arg.MustParse(&args)
	if rootParser.Subcommand() == nil {
		rootParser.Fail("missing command")
	}
	if !args.Dry && args.DSN == "" {
		rootParser.Fail("--dsn or tabledat_dsn is required unless --dry")
	}
	return &args, nil
}
