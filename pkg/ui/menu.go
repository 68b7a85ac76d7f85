package ui

import (
	"errors"
	"strings"

	"github.com/go-telegram/bot/models"
)

const (
	CallbackPrefix     = "m:"
	MaxCallbackDataLen = 64
)

type Action string

const (
	ActionAddNumbers  Action = "add"
	ActionHistory     Action = "history"
	ActionTotal       Action = "total"
	ActionRandom      Action = "random"
	ActionSetReminder Action = "remind"
	ActionClear       Action = "clear"
)

var (
	errInvalidPrefix       = errors.New("invalid callback prefix")
	errInvalidAction       = errors.New("invalid callback action")
	errCallbackDataTooLong = errors.New("callback data too long")
)

func BuildMenuCallback(action Action) (string, error) {
	if _, err := parseAction(string(action)); err != nil {
		return "", err
	}
	return CallbackPrefix + string(action), nil
}

func ParseCallbackData(data string) (Action, error) {
	if data == "" {
		return "", errInvalidAction
	}
	if len(data) > MaxCallbackDataLen {
		return "", errCallbackDataTooLong
	}
	if !strings.HasPrefix(data, CallbackPrefix) {
		return "", errInvalidPrefix
	}
	return parseAction(strings.TrimPrefix(data, CallbackPrefix))
}

func parseAction(value string) (Action, error) {
	switch Action(value) {
	case ActionAddNumbers, ActionHistory, ActionTotal, ActionRandom, ActionSetReminder, ActionClear:
		return Action(value), nil
	default:
		return "", errInvalidAction
	}
}

// RenderMenu builds the /start menu: the manual-entry and review actions of
// the savings challenge plus reminder and clear controls.
func RenderMenu() (string, *models.InlineKeyboardMarkup, error) {
	rows := [][]struct {
		label  string
		action Action
	}{
		{
			{label: "Record a number", action: ActionAddNumbers},
			{label: "Random number", action: ActionRandom},
		},
		{
			{label: "History", action: ActionHistory},
			{label: "Total saved", action: ActionTotal},
		},
		{
			{label: "Daily reminder", action: ActionSetReminder},
			{label: "Clear my savings", action: ActionClear},
		},
	}

	keyboard := make([][]models.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, item := range row {
			data, err := BuildMenuCallback(item.action)
			if err != nil {
				return "", nil, err
			}
			buttons = append(buttons, models.InlineKeyboardButton{
				Text:         item.label,
				CallbackData: data,
			})
		}
		keyboard = append(keyboard, buttons)
	}

	text := "Welcome to the 365 savings challenge!\n\n" +
		"Pick an amount from 1 to 365 each day, each one only once. " +
		"I can also draw one for you every day at a time you choose.\n\n" +
		"Choose an option:"
	return text, &models.InlineKeyboardMarkup{InlineKeyboard: keyboard}, nil
}
