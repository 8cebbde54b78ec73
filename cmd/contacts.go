package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/db"
)

var contactsCmd = &cobra.Command{
	Use:     "contacts",
	Aliases: []string{"inbox"},
	Short:   "List messages received through the contact form",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		subs, err := contact.NewStore(database).List(cmd.Context())
		if err != nil {
			return err
		}
		return renderSubmissions(os.Stdout, subs)
	},
}

func renderSubmissions(w io.Writer, subs []contact.Submission) error {
	if len(subs) == 0 {
		_, _ = fmt.Fprintln(w, "(no messages)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Received", "Name", "Email", "Subject", "Message"})
	for _, s := range subs {
		t.AppendRow(table.Row{
			s.Seq,
			s.Timestamp.Local().Format(time.DateTime),
			s.Name,
			s.Email,
			s.Subject,
			truncate(s.Message, 60),
		})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d messages)\n", len(subs))
	return nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

var (
	sendName    string
	sendEmail   string
	sendSubject string
	sendMessage string
)

var contactSendCmd = &cobra.Command{
	Use:   "send <endpoint>",
	Short: "Post a message to a contact API, e.g. http://localhost:5000/api/contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := contact.Form{Name: sendName, Email: sendEmail, Subject: sendSubject, Message: sendMessage}
		ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
		defer cancel()

		res, err := contact.NewClient(args[0]).Submit(ctx, form)
		if err != nil {
			return fmt.Errorf("%s: %w", contact.MsgNetworkError, err)
		}
		if !res.Success {
			return fmt.Errorf("rejected: %s", res.Message)
		}
		fmt.Println(res.Message)
		return nil
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Contact API tools",
}

func init() {
	f := contactSendCmd.Flags()
	f.StringVar(&sendName, "name", "", "sender name")
	f.StringVar(&sendEmail, "email", "", "sender email")
	f.StringVar(&sendSubject, "subject", "", "message subject")
	f.StringVarP(&sendMessage, "message", "m", "", "message body")

	contactCmd.AddCommand(contactSendCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(contactsCmd)
}
