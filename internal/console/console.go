// Package console is the operator-facing presentation layer: a terminal
// session with an operations menu, the transaction history and a client
// overview. It keeps no ledger state — client and history views are
// re-fetched after every operation, because the ledger is pull-based and
// never pushes updates.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"cashdesk/internal/ledger"
	"cashdesk/internal/models"
	"cashdesk/internal/money"
)

// App drives one till session.
type App struct {
	ledger  *ledger.Ledger
	in      *bufio.Scanner
	out     io.Writer
	session string
}

// New creates a session bound to the given input and output streams.
func New(l *ledger.Ledger, in io.Reader, out io.Writer) *App {
	return &App{
		ledger:  l,
		in:      bufio.NewScanner(in),
		out:     out,
		session: uuid.NewString(),
	}
}

// Run shows the main menu until the operator exits or input ends.
func (a *App) Run() error {
	fmt.Fprintf(a.out, "Онлайн-касса ВТБ (смена %s)\n", a.session)
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1. Операции")
		fmt.Fprintln(a.out, "2. История операций")
		fmt.Fprintln(a.out, "3. Клиенты")
		fmt.Fprintln(a.out, "0. Выход")

		choice, ok := a.prompt("Выберите пункт: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			a.runOperation()
		case "2":
			a.printHistory()
		case "3":
			a.printClients()
		case "0":
			return nil
		default:
			fmt.Fprintln(a.out, "Неизвестный пункт меню")
		}
	}
}

// runOperation walks the operator through one deposit, withdrawal or
// transfer. Any validation or ledger failure aborts back to the main menu
// without touching persisted state.
func (a *App) runOperation() {
	clients := a.ledger.Clients()
	if len(clients) == 0 {
		fmt.Fprintln(a.out, "Список клиентов пуст")
		return
	}
	for _, c := range clients {
		fmt.Fprintf(a.out, "  %d. %s (%s)\n", c.ID, c.Name, money.MaskAccount(c.AccountNumber))
	}

	id, ok := a.promptInt("Клиент (ID): ")
	if !ok {
		return
	}
	client, found := a.ledger.ClientByID(id)
	if !found {
		fmt.Fprintln(a.out, "Клиент не найден")
		return
	}
	fmt.Fprintf(a.out, "Баланс: %s\n", money.Format(client.Balance, client.Currency))

	fmt.Fprintln(a.out, "  1. "+models.OpDeposit)
	fmt.Fprintln(a.out, "  2. "+models.OpWithdrawal)
	fmt.Fprintln(a.out, "  3. "+models.OpTransfer)
	op, ok := a.prompt("Операция: ")
	if !ok {
		return
	}
	if op != "1" && op != "2" && op != "3" {
		fmt.Fprintln(a.out, "Неизвестная операция")
		return
	}

	targetID := 0
	if op == "3" {
		if targetID, ok = a.promptInt("Получатель (ID): "); !ok {
			return
		}
	}

	text, ok := a.prompt("Сумма: ")
	if !ok {
		return
	}
	amount, valid := money.ParseAmount(text)
	if !valid {
		fmt.Fprintln(a.out, "Введите корректную сумму")
		return
	}

	description, ok := a.prompt("Описание (необязательно): ")
	if !ok {
		return
	}

	var (
		tx  models.Transaction
		err error
	)
	switch op {
	case "1":
		tx, err = a.ledger.Deposit(client.ID, amount, description)
	case "2":
		tx, err = a.ledger.Withdraw(client.ID, amount, description)
	case "3":
		tx, err = a.ledger.Transfer(client.ID, targetID, amount, description)
	}
	if err != nil {
		fmt.Fprintln(a.out, errorMessage(err))
		return
	}

	// Re-read the client: the ledger never hands back mutated state.
	updated, _ := a.ledger.ClientByID(client.ID)
	fmt.Fprintf(a.out, "%s: %s — %s\n", tx.OperationType, money.Format(tx.Amount, updated.Currency), tx.ClientName)
	fmt.Fprintf(a.out, "Баланс: %s\n", money.Format(updated.Balance, updated.Currency))
}

func (a *App) printHistory() {
	history := a.ledger.History()
	if len(history) == 0 {
		fmt.Fprintln(a.out, "Операций пока нет")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "№\tДата\tОперация\tСумма\tКлиент\tОписание")
	for _, tx := range history {
		description := tx.Description
		if tx.TargetClient != nil {
			description += " → " + *tx.TargetClient
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Timestamp, tx.OperationType,
			money.Format(tx.Amount, models.DefaultCurrency), tx.ClientName, description)
	}
	w.Flush()
}

func (a *App) printClients() {
	clients := a.ledger.Clients()
	if len(clients) == 0 {
		fmt.Fprintln(a.out, "Список клиентов пуст")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tФИО\tСчёт\tБаланс")
	for _, c := range clients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.AccountNumber, money.Format(c.Balance, c.Currency))
	}
	w.Flush()
}

func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) promptInt(label string) (int, bool) {
	text, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(a.out, "Введите числовой идентификатор")
		return 0, false
	}
	return n, true
}

// errorMessage maps domain errors to the operator-facing text.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrClientNotFound):
		return "Клиент не найден"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "Недостаточно средств на счёте"
	case errors.Is(err, ledger.ErrSelfTransfer):
		return "Нельзя переводить средства самому себе"
	}
	return err.Error()
}
