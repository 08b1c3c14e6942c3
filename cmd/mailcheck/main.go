package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/logging"
	"github.com/technaptix/site-api/internal/mailer"
	"github.com/technaptix/site-api/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const (
	exitFailure         = 1
	exitMissingSettings = 2
)

// exitError carries the process exit code out of a command
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

var logger = logging.GetGlobalLogger()

var rootCmd = &cobra.Command{
	Use:           "mailcheck",
	Short:         "Check the SMTP settings used by the site API",
	Version:       version.Info(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var sendCmd = &cobra.Command{
	Use:   "send [mode]",
	Short: "Verify the SMTP connection and send a test email to the contact mailbox",
	Long: `Verify the SMTP connection and send "[SMTP TEST] <mode>" to the contact
destination (DEST_EMAIL_CONTACT, falling back to DEST_EMAIL).

Example:
  mailcheck send            # subject "[SMTP TEST] TEST"
  mailcheck send staging    # subject "[SMTP TEST] staging"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := "TEST"
		if len(args) == 1 {
			mode = args[0]
		}

		mail, err := loadMail()
		if err != nil {
			return err
		}
		return runSend(cmd.Context(), mailer.NewSMTPSender(mail.SMTP), mail, mode)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Only check that the SMTP server accepts the configured credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mail, err := loadMail()
		if err != nil {
			return err
		}
		return runVerify(cmd.Context(), mailer.NewSMTPSender(mail.SMTP), mail)
	},
}

func loadMail() (config.Mail, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Mail{}, &exitError{code: exitFailure, err: err}
	}
	return cfg.Mail, nil
}

// checkSettings requires credentials and the contact destination
func checkSettings(mail config.Mail) error {
	var missing []string
	if mail.SMTP.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if mail.SMTP.Password == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if mail.ContactTo == "" {
		missing = append(missing, "DEST_EMAIL_CONTACT")
	}
	if len(missing) == 0 {
		return nil
	}
	return &exitError{
		code: exitMissingSettings,
		err:  fmt.Errorf("missing %s in environment", strings.Join(missing, ", ")),
	}
}

func runVerify(ctx context.Context, sender mailer.Sender, mail config.Mail) error {
	if err := checkSettings(mail); err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Connecting to %s:%d...", mail.SMTP.Host, mail.SMTP.Port)
	s.Start()
	err := sender.Verify(ctx)
	s.Stop()

	if err != nil {
		return &exitError{code: exitFailure, err: fmt.Errorf("SMTP verification failed: %w", err)}
	}

	logger.Info("SMTP connection verified")
	return nil
}

func runSend(ctx context.Context, sender mailer.Sender, mail config.Mail, mode string) error {
	if err := runVerify(ctx, sender, mail); err != nil {
		return err
	}

	if err := sender.Send(ctx, testMessage(mail, mode)); err != nil {
		return &exitError{code: exitFailure, err: fmt.Errorf("test email failed: %w", err)}
	}

	logger.Info("✅ Test email sent to %s", mail.ContactTo)
	return nil
}

func testMessage(mail config.Mail, mode string) *mailer.Message {
	return &mailer.Message{
		FromName:    "Test",
		FromAddress: mail.SMTP.Username,
		To:          []string{mail.ContactTo},
		Subject:     "[SMTP TEST] " + mode,
		Body:        fmt.Sprintf("This is a test email (mode: %s) sent using SMTP user %s", mode, mail.SMTP.Username),
	}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("❌ %v", err)
		os.Exit(exitCode(err))
	}
}
