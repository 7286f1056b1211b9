package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontdesk-org/frontdesk/links"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Appointment links",
	Long:  "The links command is used to inspect and clear persistent appointment-to-form links",
}

var linksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persistent links",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listLinks) },
}

var clearAppointmentId string

var linksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the link of an appointment",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(clearLink) },
}

func listLinks(service links.Service) error {
	list, err := service.List(context.TODO())
	if err != nil {
		return err
	}

	for _, link := range list {
		fmt.Printf("%s -> %s (%s)\n", link.AppointmentId, link.FormId, link.UpdatedTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Found %v links\n", len(list))

	return nil
}

func clearLink(service links.Service) error {
	if clearAppointmentId == "" {
		return fmt.Errorf("appointment id is required")
	}
	if err := service.Delete(context.TODO(), clearAppointmentId); err != nil {
		return err
	}

	fmt.Printf("Cleared link of appointment %s\n", clearAppointmentId)
	return nil
}

func init() {
	linksClearCmd.Flags().StringVar(&clearAppointmentId, "appointment", "", "External id of the appointment")
	linksCmd.AddCommand(linksListCmd)
	linksCmd.AddCommand(linksClearCmd)
	rootCmd.AddCommand(linksCmd)
}
