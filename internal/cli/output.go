// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-gazelle/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func printResponse(cmd *cobra.Command, resp models.Response) error {
	compact, err := cmd.Flags().GetBool(flagCompact)
	if err != nil {
		return err
	}
	copyOut, err := cmd.Flags().GetBool(flagCopy)
	if err != nil {
		return err
	}

	var data []byte
	if compact {
		data, err = json.Marshal(resp)
	} else {
		data, err = json.MarshalIndent(resp, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	if _, err = fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
		return err
	}

	if copyOut {
		if err = copyToClipboard(string(data)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
