// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	switchScope      string
	switchTenantID   string
	switchCustomerID string
	targetAccountID  string
	restoreToken     string
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Inspect and switch the acting context",
}

var contextShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Resolve the caller's acting context",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodGet, "/api/v0/context", nil)
	},
}

var contextSwitchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Switch the operator's acting context",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodPost, "/api/v0/context/switch", map[string]string{
			"scope":       switchScope,
			"tenant_id":   switchTenantID,
			"customer_id": switchCustomerID,
		})
	},
}

var impersonateCmd = &cobra.Command{
	Use:   "impersonate",
	Short: "Start an impersonation session as a platform operator",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodPost, "/api/v0/impersonation", map[string]string{
			"target_account_id": targetAccountID,
		})
	},
}

var impersonateStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the impersonation session and recover the original credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodDelete, "/api/v0/impersonation", map[string]string{
			"restore_token": restoreToken,
		})
	},
}

func init() {
	contextSwitchCmd.Flags().StringVar(&switchScope, "scope", "", "Target scope (platform, tenant or customer)")
	contextSwitchCmd.Flags().StringVar(&switchTenantID, "tenant-id", "", "Tenant ID for tenant scope")
	contextSwitchCmd.Flags().StringVar(&switchCustomerID, "customer-id", "", "Customer ID for customer scope")
	_ = contextSwitchCmd.MarkFlagRequired("scope")

	impersonateCmd.Flags().StringVar(&targetAccountID, "target", "", "Account ID to impersonate")
	_ = impersonateCmd.MarkFlagRequired("target")

	impersonateStopCmd.Flags().StringVar(&restoreToken, "restore-token", "", "Restore token returned when the session started")

	contextCmd.AddCommand(contextShowCmd)
	contextCmd.AddCommand(contextSwitchCmd)
	impersonateCmd.AddCommand(impersonateStopCmd)

	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(impersonateCmd)
}

func callAPI(cmd *cobra.Command, method, path string, payload map[string]string) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), method, httpEndpoint+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, raw)
	}

	if len(raw) > 0 {
		cmd.Println(string(raw))
	} else {
		cmd.Printf("%s %s: %s\n", method, path, resp.Status)
	}

	return nil
}
