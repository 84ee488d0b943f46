// file: cli/menu.go

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
)

const blockedMessage = "Your account has been blocked temporarily, since you have reached the maximum number of pin input trials!\n" +
	"Contact the bank through its official communication channels for further assistance."

// Menu is the interactive shell around the ledger services. It owns no
// business rules: it collects raw input, dispatches to the services, and
// renders outcomes. Recoverable outcomes print and return to the menu;
// hard validation failures abort the program visibly.
type Menu struct {
	ledger *service.LedgerService
	query  *service.QueryService
	in     *bufio.Reader
	out    io.Writer
}

func NewMenu(ledger *service.LedgerService, query *service.QueryService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ledger: ledger,
		query:  query,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// prompt reads one trimmed input line. A line delivered together with EOF
// still counts; only exhausted input surfaces as an error.
func (m *Menu) prompt(text string) (string, error) {
	fmt.Fprint(m.out, text)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) pinPrompt() service.PINPrompt {
	return func() string {
		pin, err := m.prompt("Incorrect PIN. Please try again: ")
		if err != nil {
			return ""
		}
		return pin
	}
}

// Run drives the menu loop until the holder exits or input runs out. The
// returned error is non-nil only for hard failures, including input
// exhausted mid-operation.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nBank System Menu:")
		fmt.Fprintln(m.out, "1. Deposit Money")
		fmt.Fprintln(m.out, "2. Withdraw Money")
		fmt.Fprintln(m.out, "3. Send Money")
		fmt.Fprintln(m.out, "4. Check Balance")
		fmt.Fprintln(m.out, "5. Create a New Account")
		fmt.Fprintln(m.out, "6. Exit")

		choice, err := m.prompt("Enter your choice: ")
		if err != nil {
			// End of input at the menu is a normal end of session.
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out, "\nThank you for using the bank system.")
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = m.deposit(ctx)
		case "2":
			err = m.withdraw(ctx)
		case "3":
			err = m.transfer(ctx)
		case "4":
			err = m.checkBalance(ctx)
		case "5":
			err = m.createAccount(ctx)
		case "6":
			fmt.Fprintln(m.out, "\nThank you for using the bank system.")
			return nil
		default:
			fmt.Fprintln(m.out, "\nInvalid choice. Please try again!")
			continue
		}
		if err != nil {
			return err
		}
	}
}

// render prints recoverable outcomes and passes everything else through.
func (m *Menu) render(err error) error {
	var insufficient *service.InsufficientFundsError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrAccountNotFound):
		fmt.Fprintln(m.out, "Wrong account number!")
	case errors.Is(err, service.ErrRecipientNotFound):
		fmt.Fprintln(m.out, "The account entered does not exist!")
	case errors.Is(err, service.ErrPINAttemptsExceeded):
		fmt.Fprintln(m.out, blockedMessage)
	case errors.Is(err, service.ErrAccountExists):
		fmt.Fprintln(m.out, "This account already exists!")
	case errors.Is(err, service.ErrMissingName):
		fmt.Fprintln(m.out, "No name was entered!")
	case errors.As(err, &insufficient):
		fmt.Fprintf(m.out, "You have insufficient balance to complete this transaction! Your balance is $%s\n",
			common.FormatAmount(insufficient.Balance))
	default:
		return err
	}
	return nil
}

// promptAll collects one answer per prompt text, failing on exhausted input.
func (m *Menu) promptAll(texts ...string) ([]string, error) {
	answers := make([]string, 0, len(texts))
	for _, text := range texts {
		answer, err := m.prompt(text)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (m *Menu) deposit(ctx context.Context) error {
	answers, err := m.promptAll(
		"Enter your account number: ",
		"Enter your PIN: ",
		"Enter the amount you wish to deposit: ",
	)
	if err != nil {
		return err
	}
	accountNumber, pin, amount := answers[0], answers[1], answers[2]

	receipt, err := m.ledger.Deposit(ctx, accountNumber, pin, amount, m.pinPrompt())
	if err != nil {
		return m.render(err)
	}
	fmt.Fprintf(m.out, "You have successfully deposited $%s. Balance for account %s: $%s\n",
		common.FormatAmount(receipt.Amount), receipt.AccountNumber, common.FormatAmount(receipt.Balance))
	return nil
}

func (m *Menu) withdraw(ctx context.Context) error {
	answers, err := m.promptAll(
		"Enter your account number: ",
		"Enter your PIN: ",
		"Enter the amount you would like to withdraw: ",
	)
	if err != nil {
		return err
	}
	accountNumber, pin, amount := answers[0], answers[1], answers[2]

	receipt, err := m.ledger.Withdraw(ctx, accountNumber, pin, amount, m.pinPrompt())
	if err != nil {
		return m.render(err)
	}
	fmt.Fprintf(m.out, "You have successfully withdrawn $%s. Balance for account %s: $%s\n",
		common.FormatAmount(receipt.Amount), receipt.AccountNumber, common.FormatAmount(receipt.Balance))
	return nil
}

func (m *Menu) transfer(ctx context.Context) error {
	answers, err := m.promptAll(
		"Enter your account number: ",
		"Enter account number you wish to send money to: ",
		"Enter your PIN: ",
		"Enter amount: ",
	)
	if err != nil {
		return err
	}
	accountNumber, recipient, pin, amount := answers[0], answers[1], answers[2], answers[3]

	receipt, err := m.ledger.Transfer(ctx, recipient, accountNumber, pin, amount, m.pinPrompt())
	if err != nil {
		return m.render(err)
	}
	fmt.Fprintf(m.out, "You have sent $%s to account number %s. Balance for %s: $%s\n",
		common.FormatAmount(receipt.Amount), recipient, receipt.AccountNumber, common.FormatAmount(receipt.Balance))
	return nil
}

func (m *Menu) checkBalance(ctx context.Context) error {
	answers, err := m.promptAll(
		"Enter your account number: ",
		"Enter your PIN: ",
	)
	if err != nil {
		return err
	}
	accountNumber, pin := answers[0], answers[1]

	balance, err := m.query.CheckBalance(ctx, accountNumber, pin, m.pinPrompt())
	if err != nil {
		return m.render(err)
	}
	fmt.Fprintf(m.out, "Balance for account %s: $%s\n", accountNumber, common.FormatAmount(balance))
	return nil
}

func (m *Menu) createAccount(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to the banking system. Here, you will create your account as a first time user!")

	answers, err := m.promptAll(
		"Please enter your full names, each name separated by a blank space: ",
		"Enter any 6 digit number as your account number: ",
		"Confirm your account number: ",
		"Enter your four character PIN: ",
		"Confirm your PIN: ",
		"Enter your initial deposit amount: ",
	)
	if err != nil {
		return err
	}

	req := model.CreateAccountRequest{
		Name:                 answers[0],
		AccountNumber:        answers[1],
		ConfirmAccountNumber: answers[2],
		PIN:                  answers[3],
		ConfirmPIN:           answers[4],
		InitialDeposit:       answers[5],
	}

	receipt, err := m.ledger.CreateAccount(ctx, req)
	if err != nil {
		return m.render(err)
	}
	fmt.Fprintf(m.out, "Account created successfully! Your balance is $%s\n", common.FormatAmount(receipt.Balance))
	return nil
}
