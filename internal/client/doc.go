// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the task tracker.
//
// Each subcommand maps onto one adapter call and prints the server response
// as indented JSON.
package client
