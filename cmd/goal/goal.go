// Package goal manages savings goals and deposits into them.
package goal

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/smartfinance/cmd/root"
	"fjacquet/smartfinance/internal/apperror"
	"fjacquet/smartfinance/internal/config"
	"fjacquet/smartfinance/internal/models"
)

var (
	name    string
	target  string
	goalID  string
	deposit string
)

// Cmd represents the goal command.
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a savings goal",
	RunE:  addFunc,
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit into a goal, recording the matching expense",
	RunE:  depositFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show goals and their progress",
	RunE:  listFunc,
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Goal name")
	addCmd.Flags().StringVarP(&target, "target", "t", "", "Target amount")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("target")

	depositCmd.Flags().StringVar(&goalID, "id", "", "Goal id")
	depositCmd.Flags().StringVarP(&deposit, "amount", "a", "", "Deposit amount")
	_ = depositCmd.MarkFlagRequired("id")
	_ = depositCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(depositCmd)
	Cmd.AddCommand(listCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	amount, err := config.ParseDecimalFlag("target", target)
	if err != nil {
		return err
	}
	goal, err := models.NewSavingsGoal(name, amount)
	if err != nil {
		return err
	}
	if err := root.App.Store().AddGoal(goal); err != nil {
		return err
	}
	cmd.Printf("Goal %q created (id %s)\n", goal.Name, goal.ID)
	return nil
}

func depositFunc(cmd *cobra.Command, args []string) error {
	amount, err := config.ParseDecimalFlag("amount", deposit)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return &apperror.ValidationError{Field: "amount", Value: deposit, Reason: "must be a positive number"}
	}

	goals, err := root.App.Store().Goals()
	if err != nil {
		return err
	}
	var goal *models.SavingsGoal
	for i := range goals {
		if goals[i].ID == goalID {
			goal = &goals[i]
			break
		}
	}
	if goal == nil {
		return &apperror.ValidationError{Field: "goal", Value: goalID, Reason: "not found"}
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	if err := root.App.Store().UpdateGoal(*goal); err != nil {
		return err
	}

	// The deposit shows up in the transaction list as a savings expense.
	tx := models.NewTransaction(amount, fmt.Sprintf("Deposit to %s", goal.Name),
		models.CategorySavings, models.TypeExpense, time.Now())
	if err := root.App.Store().AddTransaction(tx); err != nil {
		return &apperror.PersistenceError{
			Collection: "transactions",
			Op:         "add goal deposit",
			Missing:    tx.ID,
			Err:        err,
		}
	}

	cmd.Printf("Deposited %s into %q (%s / %s)\n",
		amount.StringFixed(2), goal.Name,
		goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2))
	if goal.Reached() {
		cmd.Println("Goal reached!")
	}
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	goals, err := root.App.Store().Goals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		cmd.Println("No savings goals")
		return nil
	}
	for i := range goals {
		goal := &goals[i]
		status := ""
		if goal.Reached() {
			status = "  reached"
		}
		cmd.Printf("%s  %-16s %s / %s%s\n",
			goal.ID, goal.Name,
			goal.CurrentAmount.StringFixed(2), goal.TargetAmount.StringFixed(2), status)
	}
	return nil
}
