package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	ms "pfeifer.dev/acc/settings"
)

type settingKey int

const (
	settingNone settingKey = iota
	settingLogLevel
	settingLogFile
	settingDemoLogFile
	settingInteractiveLogFile
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	saveSettings
	loadDefaultSettings
)

type settingsItem struct {
	title, desc string
	state       settingsState
	key         settingKey
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	message      string
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func currentSetting(key settingKey) string {
	switch key {
	case settingLogLevel:
		return ms.Settings.LogLevel
	case settingLogFile:
		return ms.Settings.LogFile
	case settingDemoLogFile:
		return ms.Settings.DemoLogFile
	case settingInteractiveLogFile:
		return ms.Settings.InteractiveLogFile
	}
	return ""
}

func applySetting(key settingKey, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case settingLogLevel:
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			ms.Settings.SetLogLevel(strings.ToLower(value))
		default:
			return errors.Errorf("unknown log level %q", value)
		}
	case settingLogFile, settingDemoLogFile, settingInteractiveLogFile:
		if value == "" {
			return errors.New("log file name cannot be empty")
		}
		switch key {
		case settingLogFile:
			ms.Settings.LogFile = value
		case settingDemoLogFile:
			ms.Settings.DemoLogFile = value
		case settingInteractiveLogFile:
			ms.Settings.InteractiveLogFile = value
		}
	default:
		return errors.New("setting cannot be edited")
	}
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu && m.list.FilterState() != list.Filtering {
			it, ok := m.list.SelectedItem().(settingsItem)
			if !ok {
				return m, nil
			}
			return m.selectItem(it)
		}
		if m.state == settingsInput {
			switch msg.Type {
			case tea.KeyEsc:
				m.state = showSettingsMenu
				m.message = ""
				return m, nil
			case tea.KeyEnter:
				m.state = showSettingsMenu
				if err := applySetting(m.selectedItem.key, m.textInput.Value()); err != nil {
					m.message = err.Error()
				} else {
					m.message = fmt.Sprintf("%s set to %s", m.selectedItem.title, currentSetting(m.selectedItem.key))
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) selectItem(it settingsItem) (tea.Model, tea.Cmd) {
	m.selectedItem = it
	switch it.state {
	case settingsExit:
		return m, tea.Quit
	case settingsInput:
		m.state = settingsInput
		m.prompt = it.title
		m.textInput.SetValue(currentSetting(it.key))
		m.textInput.CursorEnd()
		return m, m.textInput.Focus()
	case saveSettings:
		if err := ms.Settings.Save(); err != nil {
			m.message = "could not save settings: " + err.Error()
		} else {
			m.message = "settings saved"
		}
	case loadDefaultSettings:
		if err := ms.Settings.Reset(); err != nil {
			m.message = "could not clear saved settings: " + err.Error()
		} else {
			m.message = "default settings restored"
		}
	}
	return m, nil
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(enter to apply, esc to cancel)",
		) + "\n")
	default:
		view := m.list.View()
		if m.message != "" {
			view += "\n" + m.message
		}
		return docStyle.Render(view)
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title: "Log Level",
			desc:  "How verbose diagnostic logging is (debug, info, warn, error)",
			key:   settingLogLevel,
			state: settingsInput,
		},
		settingsItem{
			title: "Status Log File",
			desc:  "Where status snapshots go by default",
			key:   settingLogFile,
			state: settingsInput,
		},
		settingsItem{
			title: "Demo Log File",
			desc:  "Where demo mode records its scenarios",
			key:   settingDemoLogFile,
			state: settingsInput,
		},
		settingsItem{
			title: "Interactive Log File",
			desc:  "Default log file offered by interactive mode",
			key:   settingInteractiveLogFile,
			state: settingsInput,
		},
		settingsItem{
			title: "Load Default Settings",
			desc:  "Reset every setting to its built-in default and forget saved settings",
			state: loadDefaultSettings,
		},
		settingsItem{
			title: "Save Settings",
			desc:  "Persists any updates to the settings across sessions",
			state: saveSettings,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "ACC Settings"
	return m
}

func editSettings() error {
	p := tea.NewProgram(getSettingsModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "could not run settings editor")
	}
	return nil
}
