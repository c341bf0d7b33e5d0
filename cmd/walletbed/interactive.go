package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halcyoncore/wallet-bridge/ffi"
	"github.com/halcyoncore/wallet-bridge/handle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	paramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type actionInfo struct {
	name   string
	params []string
	run    func(m *consoleModel, args []string) (string, error)
}

type modelState int

const (
	stateSelectAction modelState = iota
	stateInputArgs
	stateShowResult
)

type consoleModel struct {
	err     error
	address string
	dbName  string
	store   string
	keyHex  string

	wallet    handle.Handle
	callbacks handle.Handle
	eventCh   chan string

	actions  []actionInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
	result   string
	events   []string
}

type openedMsg struct {
	err       error
	wallet    handle.Handle
	callbacks handle.Handle
}

type actionResultMsg struct {
	err    error
	result string
}

type walletEventMsg string

func newConsoleModel(address, dbName, store, keyHex string) *consoleModel {
	m := &consoleModel{
		address: address,
		dbName:  dbName,
		store:   store,
		keyHex:  keyHex,
		eventCh: make(chan string, 16),
		state:   stateSelectAction,
	}
	m.actions = []actionInfo{
		{name: "balance", run: (*consoleModel).doBalance},
		{name: "contacts", run: (*consoleModel).doContacts},
		{name: "transactions", run: (*consoleModel).doTransactions},
		{name: "send", params: []string{"dest hex", "amount", "fee"}, run: (*consoleModel).doSend},
		{name: "add-contact", params: []string{"alias", "pubkey hex"}, run: (*consoleModel).doAddContact},
		{name: "remove-contact", params: []string{"pubkey hex"}, run: (*consoleModel).doRemoveContact},
		{name: "testdata", run: (*consoleModel).doTestData},
	}
	return m
}

func (m *consoleModel) Init() tea.Cmd {
	return tea.Batch(m.openWallet, m.waitForEvent)
}

func (m *consoleModel) openWallet() tea.Msg {
	w, err := openWallet(m.address, m.dbName, m.store, m.keyHex)
	if err != nil {
		return openedMsg{err: err}
	}

	cb := ffi.CallbacksCreate()
	ffi.CallbacksRegisterReceivedTransaction(cb, func(h handle.Handle) {
		m.eventCh <- fmt.Sprintf("received transaction #%d amount=%d",
			ffi.PendingInboundTransactionGetTransactionID(h),
			ffi.PendingInboundTransactionGetAmount(h))
		ffi.PendingInboundTransactionDestroy(h)
	})
	ffi.CallbacksRegisterReceivedTransactionReply(cb, func(h handle.Handle) {
		m.eventCh <- fmt.Sprintf("transaction #%d completed",
			ffi.CompletedTransactionGetTransactionID(h))
		ffi.CompletedTransactionDestroy(h)
	})
	ffi.WalletSetCallbacks(w, cb)

	return openedMsg{wallet: w, callbacks: cb}
}

func (m *consoleModel) waitForEvent() tea.Msg {
	return walletEventMsg(<-m.eventCh)
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputArgs && msg.String() == "q" {
				break // let the field take the character
			}
			ffi.WalletDestroy(m.wallet)
			ffi.CallbacksDestroy(m.callbacks)
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectAction && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectAction && m.selected < len(m.actions)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectAction:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.runAction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.runAction

			case stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectAction
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}
		}

	case openedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.wallet = msg.wallet
		m.callbacks = msg.callbacks

	case actionResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		m.inputs = nil

	case walletEventMsg:
		m.events = append(m.events, string(msg))
		if len(m.events) > 5 {
			m.events = m.events[len(m.events)-5:]
		}
		return m, m.waitForEvent
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *consoleModel) prepareInputs() {
	a := m.actions[m.selected]
	m.inputs = make([]textinput.Model, len(a.params))
	for i, p := range a.params {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = p + ": "
		ti.Width = 70
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *consoleModel) runAction() tea.Msg {
	a := m.actions[m.selected]
	args := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = strings.TrimSpace(input.Value())
	}
	result, err := a.run(m, args)
	return actionResultMsg{result: result, err: err}
}

func (m *consoleModel) doBalance([]string) (string, error) {
	return fmt.Sprintf("balance: %d", ffi.WalletGetBalance(m.wallet)), nil
}

func (m *consoleModel) doContacts([]string) (string, error) {
	list := ffi.WalletGetContacts(m.wallet)
	if list == handle.Nil {
		return "", boundaryErr("get contacts")
	}
	defer ffi.ContactsDestroy(list)

	n := ffi.ContactsGetLength(list)
	var b strings.Builder
	fmt.Fprintf(&b, "%d contact(s)\n", n)
	for i := uint32(0); i < n; i++ {
		c := ffi.ContactsGetAt(list, i)
		pub := ffi.ContactGetPublicKey(c)
		pubBytes := ffi.PublicKeyGetBytes(pub)
		fmt.Fprintf(&b, "  %-12s %s\n", ffi.ContactGetAlias(c), hexOf(pubBytes))
		ffi.ByteVectorDestroy(pubBytes)
		ffi.PublicKeyDestroy(pub)
		ffi.ContactDestroy(c)
	}
	return b.String(), nil
}

func (m *consoleModel) doTransactions([]string) (string, error) {
	var b strings.Builder

	if list := ffi.WalletGetCompletedTransactions(m.wallet); list != handle.Nil {
		n := ffi.CompletedTransactionsGetLength(list)
		fmt.Fprintf(&b, "completed: %d\n", n)
		for i := uint32(0); i < n; i++ {
			tx := ffi.CompletedTransactionsGetAt(list, i)
			fmt.Fprintf(&b, "  #%d amount=%d fee=%d\n",
				ffi.CompletedTransactionGetTransactionID(tx),
				ffi.CompletedTransactionGetAmount(tx),
				ffi.CompletedTransactionGetFee(tx))
			ffi.CompletedTransactionDestroy(tx)
		}
		ffi.CompletedTransactionsDestroy(list)
	}

	if list := ffi.WalletGetPendingInboundTransactions(m.wallet); list != handle.Nil {
		n := ffi.PendingInboundTransactionsGetLength(list)
		fmt.Fprintf(&b, "pending inbound: %d\n", n)
		for i := uint32(0); i < n; i++ {
			tx := ffi.PendingInboundTransactionsGetAt(list, i)
			fmt.Fprintf(&b, "  #%d amount=%d\n",
				ffi.PendingInboundTransactionGetTransactionID(tx),
				ffi.PendingInboundTransactionGetAmount(tx))
			ffi.PendingInboundTransactionDestroy(tx)
		}
		ffi.PendingInboundTransactionsDestroy(list)
	}

	if list := ffi.WalletGetPendingOutboundTransactions(m.wallet); list != handle.Nil {
		n := ffi.PendingOutboundTransactionsGetLength(list)
		fmt.Fprintf(&b, "pending outbound: %d\n", n)
		for i := uint32(0); i < n; i++ {
			tx := ffi.PendingOutboundTransactionsGetAt(list, i)
			fmt.Fprintf(&b, "  #%d amount=%d fee=%d\n",
				ffi.PendingOutboundTransactionGetTransactionID(tx),
				ffi.PendingOutboundTransactionGetAmount(tx),
				ffi.PendingOutboundTransactionGetFee(tx))
			ffi.PendingOutboundTransactionDestroy(tx)
		}
		ffi.PendingOutboundTransactionsDestroy(list)
	}
	return b.String(), nil
}

func (m *consoleModel) doSend(args []string) (string, error) {
	dest := ffi.PublicKeyFromHex(args[0])
	if dest == handle.Nil {
		return "", boundaryErr("parse destination")
	}
	defer ffi.PublicKeyDestroy(dest)

	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return "", fmt.Errorf("amount: %w", err)
	}
	fee, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return "", fmt.Errorf("fee: %w", err)
	}

	id := ffi.WalletSendTransaction(m.wallet, dest, amount, fee)
	if id == 0 {
		return "", boundaryErr("send")
	}
	return fmt.Sprintf("sent transaction #%d", id), nil
}

func (m *consoleModel) doAddContact(args []string) (string, error) {
	pub := ffi.PublicKeyFromHex(args[1])
	if pub == handle.Nil {
		return "", boundaryErr("parse public key")
	}
	defer ffi.PublicKeyDestroy(pub)

	c := ffi.ContactCreate(args[0], pub)
	if c == handle.Nil {
		return "", boundaryErr("create contact")
	}
	defer ffi.ContactDestroy(c)

	if !ffi.WalletAddContact(m.wallet, c) {
		return "", boundaryErr("add contact")
	}
	return "contact saved", nil
}

func (m *consoleModel) doRemoveContact(args []string) (string, error) {
	pub := ffi.PublicKeyFromHex(args[0])
	if pub == handle.Nil {
		return "", boundaryErr("parse public key")
	}
	defer ffi.PublicKeyDestroy(pub)

	c := ffi.ContactCreate("x", pub)
	defer ffi.ContactDestroy(c)

	if !ffi.WalletRemoveContact(m.wallet, c) {
		return "", boundaryErr("remove contact")
	}
	return "contact removed", nil
}

func (m *consoleModel) doTestData([]string) (string, error) {
	if !ffi.WalletGenerateTestData(m.wallet) {
		return "", boundaryErr("generate test data")
	}
	return "test data seeded", nil
}

func (m *consoleModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.wallet == handle.Nil {
		return "Opening wallet..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Wallet Testbed"))
	b.WriteString(" ")
	b.WriteString(m.address)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectAction:
		b.WriteString("Select an action:\n\n")
		for i, a := range m.actions {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatAction(a)))
			} else {
				b.WriteString(cursor + m.formatAction(a))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputArgs:
		a := m.actions[m.selected]
		fmt.Fprintf(&b, "Running %s\n\n", actionStyle.Render(a.name))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		a := m.actions[m.selected]
		fmt.Fprintf(&b, "Result of %s:\n\n", actionStyle.Render(a.name))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	if len(m.events) > 0 {
		b.WriteString("\n\nEvents:\n")
		for _, ev := range m.events {
			b.WriteString(eventStyle.Render("  " + ev))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m *consoleModel) formatAction(a actionInfo) string {
	if len(a.params) == 0 {
		return actionStyle.Render(a.name)
	}
	return actionStyle.Render(a.name) + "(" + paramStyle.Render(strings.Join(a.params, ", ")) + ")"
}

func runInteractive(address, dbName, store, keyHex string) error {
	p := tea.NewProgram(newConsoleModel(address, dbName, store, keyHex), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
