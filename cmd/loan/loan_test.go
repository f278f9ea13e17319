package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoanCommand_Metadata(t *testing.T) {
	assert.Equal(t, "loan", Cmd.Use)

	names := make(map[string]bool)
	for _, sub := range Cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["repay"])
}

func TestRepayCommand_Flags(t *testing.T) {
	idFlag := repayCmd.Flags().Lookup("id")
	assert.NotNil(t, idFlag)

	amountFlag := repayCmd.Flags().Lookup("amount")
	assert.NotNil(t, amountFlag)
	assert.Equal(t, "a", amountFlag.Shorthand)
}
