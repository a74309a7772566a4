// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ChainSafe/custody-gateway/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run gateway",
		Long:  "Run gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Run(); err != nil {
				return err
			}
			return nil
		},
	}
)
