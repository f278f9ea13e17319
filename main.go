package main

import (
	"fmt"
	"os"

	"fjacquet/smartfinance/cmd/add"
	"fjacquet/smartfinance/cmd/budget"
	"fjacquet/smartfinance/cmd/data"
	del "fjacquet/smartfinance/cmd/delete"
	"fjacquet/smartfinance/cmd/export"
	"fjacquet/smartfinance/cmd/goal"
	"fjacquet/smartfinance/cmd/list"
	"fjacquet/smartfinance/cmd/loan"
	"fjacquet/smartfinance/cmd/quickadd"
	"fjacquet/smartfinance/cmd/reconcile"
	"fjacquet/smartfinance/cmd/report"
	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/cmd/settings"
)

func init() {
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(del.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(goal.Cmd)
	root.Cmd.AddCommand(loan.Cmd)
	root.Cmd.AddCommand(quickadd.Cmd)
	root.Cmd.AddCommand(settings.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(data.Cmd)
	root.Cmd.AddCommand(reconcile.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
