// This file is part of go-getopt.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorUnrecognizedOption holds the text for an unknown long option.
// It has a string placeholder '%s' for the option as typed, dashes included.
var ErrorUnrecognizedOption = "unrecognized option '%s'"

// ErrorInvalidOption holds the text for an unknown short option.
// It has a character placeholder '%c' for the option character.
var ErrorInvalidOption = "invalid option -- '%c'"

// ErrorAmbiguousOption holds the text for an abbreviation matching more than one long option.
// It has a string placeholder '%s' for the option as typed and a second one for the candidate list.
var ErrorAmbiguousOption = "option '%s' is ambiguous; possibilities:%s"

// ErrorMissingArgument holds the text for a long option missing its required argument.
var ErrorMissingArgument = "option '%s' requires an argument"

// ErrorMissingArgumentShort holds the text for a short option missing its required argument.
var ErrorMissingArgumentShort = "option requires an argument -- '%c'"

// ErrorUnexpectedArgument holds the text for a long option that was given an argument it doesn't take.
var ErrorUnexpectedArgument = "option '%s' doesn't allow an argument"

// ErrorInvalidArguments holds the text for structurally invalid input to the parser.
var ErrorInvalidArguments = "invalid arguments"

// ErrorDone holds the text for the end of the option scan.
var ErrorDone = "no more options"

// MessageTryHelp is printed after a usage error.
// It has a string placeholder '%s' for the program name.
var MessageTryHelp = "Try '%s --help' for more information."

// HelpNameHeader - NAME header
var HelpNameHeader = "NAME"

// HelpSynopsisHeader - SYNOPSIS header
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader - OPTIONS header
var HelpOptionsHeader = "OPTIONS"
