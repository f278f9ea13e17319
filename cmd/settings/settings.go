// Package settings manages the stored application settings.
package settings

import (
	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/config"
)

var (
	salary     string
	salaryDay  int
	lowBalance string
)

// Cmd represents the settings command.
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change application settings",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	RunE:  setFunc,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  showFunc,
}

func init() {
	setCmd.Flags().StringVar(&salary, "salary", "", "Monthly salary for auto-income (empty string clears it)")
	setCmd.Flags().IntVar(&salaryDay, "salary-day", 0, "Day of month the salary arrives (1-31)")
	setCmd.Flags().StringVar(&lowBalance, "low-balance", "", "Balance threshold for the low-balance warning")

	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(showCmd)
}

func setFunc(cmd *cobra.Command, args []string) error {
	current, err := root.App.Store().Settings()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("salary") {
		if salary == "" {
			current.MonthlySalary = nil
		} else {
			value, err := config.ParseDecimalFlag("salary", salary)
			if err != nil {
				return err
			}
			if !value.IsPositive() {
				return &apperror.ValidationError{Field: "salary", Value: salary, Reason: "must be a positive number"}
			}
			current.MonthlySalary = &value
		}
	}
	if cmd.Flags().Changed("salary-day") {
		if salaryDay < 1 || salaryDay > 31 {
			return &apperror.ValidationError{Field: "salary-day", Reason: "must be between 1 and 31"}
		}
		current.SalaryDay = salaryDay
	}
	if cmd.Flags().Changed("low-balance") {
		value, err := config.ParseDecimalFlag("low-balance", lowBalance)
		if err != nil {
			return err
		}
		current.LowBalanceThreshold = value
	}

	if err := root.App.Store().SaveSettings(current); err != nil {
		return err
	}
	cmd.Println("Settings saved")
	return nil
}

func showFunc(cmd *cobra.Command, args []string) error {
	settings, err := root.App.Store().Settings()
	if err != nil {
		return err
	}

	if settings.MonthlySalary != nil {
		cmd.Printf("Monthly salary:        %s (day %d)\n", settings.MonthlySalary.StringFixed(2), settings.SalaryDay)
	} else {
		cmd.Println("Monthly salary:        not set")
	}
	if settings.LowBalanceThreshold.IsPositive() {
		cmd.Printf("Low-balance threshold: %s\n", settings.LowBalanceThreshold.StringFixed(2))
	} else {
		cmd.Println("Low-balance threshold: not set")
	}
	cmd.Printf("Auto salary:           %v\n", settings.AutoSalaryEnabled())
	return nil
}
