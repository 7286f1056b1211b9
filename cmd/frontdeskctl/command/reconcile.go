package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontdesk-org/frontdesk/api"
	"github.com/frontdesk-org/frontdesk/reconcile"
)

var (
	reconcileFrom string
	reconcileTo   string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation pass",
	Long:  "The reconcile command runs a single matching pass for a date range and prints the merged list",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(runReconcile) },
}

func runReconcile(reconciler *reconcile.Reconciler) error {
	if reconcileFrom == "" || reconcileTo == "" {
		return fmt.Errorf("both --from and --to are required")
	}

	dateRange := reconcile.DateRange{From: reconcileFrom, To: reconcileTo}
	result, err := reconciler.Reconcile(context.TODO(), dateRange, true)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(api.NewReconciliationDto(result), "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(encoded))
	return nil
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFrom, "from", "", "Start date (YYYY-MM-DD)")
	reconcileCmd.Flags().StringVar(&reconcileTo, "to", "", "End date (YYYY-MM-DD)")
	rootCmd.AddCommand(reconcileCmd)
}
