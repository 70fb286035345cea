package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mgutz/tabledat"
)

// AppContext is the context we pass around instead of having globals
type AppContext struct {
	Options *CLIArgs
	// Conn is nil for dry runs.
	Conn tabledat.Connection
	Out  io.Writer
}

func (ctx *AppContext) table(name string) *tabledat.Table {
	return tabledat.NewTable(name, ctx.Conn)
}

// printSQL handles --dry and reports whether it did.
func (ctx *AppContext) printSQL(sql string) bool {
	if !ctx.Options.Dry {
		return false
	}
	fmt.Fprintln(ctx.Out, sql)
	return true
}

func run(ctx *AppContext) error {
	options := ctx.Options
	switch {
	case options.SelectCmd != nil:
		return selectRows(ctx)
	case options.InsertCmd != nil:
		return insertRow(ctx)
	case options.UpdateCmd != nil:
		return updateRows(ctx)
	case options.DeleteCmd != nil:
		return deleteRows(ctx)
	case options.SQLCmd != nil:
		return query(ctx)
	}
	return errors.New("missing command")
}

func selectRows(ctx *AppContext) error {
	cmd := ctx.Options.SelectCmd
	conditions, err := buildConditions(&cmd.Filter)
	if err != nil {
		return err
	}
	sorters, err := buildSorters(cmd.Sort)
	if err != nil {
		return err
	}
	columns := cmd.Columns
	if len(columns) == 0 {
		columns = []string{tabledat.AllColumns}
	}

	table := ctx.table(cmd.Table)
	if ctx.printSQL(table.SelectSQL(columns, conditions, sorters)) {
		return nil
	}
	records, err := table.SelectWhereSorted(columns, conditions, sorters)
	if err != nil {
		return fmt.Errorf("select from %s: %w", cmd.Table, err)
	}
	return printRecords(ctx.Out, records, ctx.Options.JSON)
}

func insertRow(ctx *AppContext) error {
	cmd := ctx.Options.InsertCmd
	values, err := buildRecord(cmd.Assignments)
	if err != nil {
		return err
	}

	table := ctx.table(cmd.Table)
	if ctx.printSQL(table.InsertSQL(values)) {
		return nil
	}
	affected, err := table.Insert(values)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", cmd.Table, err)
	}
	return printAffected(ctx.Out, affected, ctx.Options.JSON)
}

func updateRows(ctx *AppContext) error {
	cmd := ctx.Options.UpdateCmd
	values, err := buildRecord(cmd.Assignments)
	if err != nil {
		return err
	}
	conditions, err := filterOrAll(&cmd.Filter, cmd.All)
	if err != nil {
		return err
	}

	table := ctx.table(cmd.Table)
	if ctx.printSQL(table.UpdateSQL(values, conditions)) {
		return nil
	}
	affected, err := table.Update(values, conditions)
	if err != nil {
		return fmt.Errorf("update %s: %w", cmd.Table, err)
	}
	return printAffected(ctx.Out, affected, ctx.Options.JSON)
}

func deleteRows(ctx *AppContext) error {
	cmd := ctx.Options.DeleteCmd
	conditions, err := filterOrAll(&cmd.Filter, cmd.All)
	if err != nil {
		return err
	}

	table := ctx.table(cmd.Table)
	if ctx.printSQL(table.DeleteSQL(conditions)) {
		return nil
	}
	affected, err := table.Delete(conditions)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", cmd.Table, err)
	}
	return printAffected(ctx.Out, affected, ctx.Options.JSON)
}

// query runs arbitrary SQL through the connection and prints what it returns.
func query(ctx *AppContext) error {
	sql := ctx.Options.SQLCmd.Query
	if ctx.printSQL(sql) {
		return nil
	}
	if ctx.Conn == nil {
		return tabledat.ErrDisconnected
	}
	cursor, err := ctx.Conn.Query(sql)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	records, err := tabledat.Materialize(cursor)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return printRecords(ctx.Out, records, ctx.Options.JSON)
}

// filterOrAll refuses to touch every row unless all is set.
func filterOrAll(filter *Filter, all bool) (*tabledat.Conditions, error) {
	conditions, err := buildConditions(filter)
	if err != nil {
		return nil, err
	}
	if conditions == nil && !all {
		return nil, errors.New("no --where given, use --all to affect every row")
	}
	return conditions, nil
}
