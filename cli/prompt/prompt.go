// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/manifoldco/promptui"

	"github.com/peterchijioke/solana-smart-contract/codec"
	"github.com/peterchijioke/solana-smart-contract/utils"
)

var (
	ErrInputEmpty      = errors.New("input is empty")
	ErrInputTooLarge   = errors.New("input is too large")
	ErrInvalidUTF8     = errors.New("input is not valid UTF-8")
	ErrIndexOutOfRange = errors.New("index out-of-range")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrNoKeys          = errors.New("no available keys")
)

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := ParseAddress(input)
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return ParseAddress(raw)
}

func ParseAddress(input string) (codec.Address, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return codec.EmptyAddress, ErrInputEmpty
	}
	return codec.ParseAddress(input)
}

// Metadata asks for the text stored in a record. Empty metadata is allowed.
func Metadata(label string, maxLen int) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			return CheckMetadata(input, maxLen)
		},
	}
	return promptText.Run()
}

func CheckMetadata(input string, maxLen int) error {
	if len(input) > maxLen {
		return ErrInputTooLarge
	}
	if !utf8.ValidString(input) {
		return ErrInvalidUTF8
	}
	return nil
}

// Amount asks for an integer amount in the smallest currency unit.
func Amount(label string) (uint64, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := ParseAmount(input)
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return ParseAmount(raw)
}

func ParseAmount(input string) (uint64, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return 0, ErrInputEmpty
	}
	return strconv.ParseUint(input, 10, 64)
}

// Key lets the user pick one of [keys], which is auto-selected when it is the
// only one.
func Key(label string, keys []codec.Address) (codec.Address, error) {
	switch len(keys) {
	case 0:
		return codec.EmptyAddress, ErrNoKeys
	case 1:
		utils.Outf("{{yellow}}%s:{{/}} %s [auto-selected]\n", label, keys[0])
		return keys[0], nil
	}
	for i, k := range keys {
		utils.Outf("%d) {{cyan}}address:{{/}} %s\n", i, k)
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := ParseChoice(input, len(keys))
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	index, err := ParseChoice(raw, len(keys))
	if err != nil {
		return codec.EmptyAddress, err
	}
	return keys[index], nil
}

func ParseChoice(input string, maxChoice int) (int, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return -1, ErrInputEmpty
	}
	index, err := strconv.Atoi(input)
	if err != nil {
		return -1, err
	}
	if index >= maxChoice || index < 0 {
		return -1, ErrIndexOutOfRange
	}
	return index, nil
}

func Continue() (bool, error) {
	promptText := promptui.Prompt{
		Label: "continue (y/n)",
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			lower := strings.ToLower(input)
			if lower == "y" || lower == "n" {
				return nil
			}
			return ErrInvalidChoice
		},
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	cont := strings.ToLower(rawContinue)
	if cont == "n" {
		utils.Outf("{{red}}exiting...{{/}}\n")
		return false, nil
	}
	return true, nil
}
