/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestLoad_ValidFile(t *testing.T) {
	p := writeConfigFile(t, `
docdb:
  base_url: "http://127.0.0.1:8529"
  database: "relay"
`)

	cfg, err := Load(p, viper.New())
	require.NoError(t, err)

	assert.Equal(t, Default().SocketPath, cfg.SocketPath)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "relay", cfg.DocDB.Database)
}

func TestLoad_MissingRequiredFieldFails(t *testing.T) {
	p := writeConfigFile(t, `workers: 4`)

	_, err := Load(p, viper.New())
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfigFile(t, `
workers: 2
docdb:
  base_url: "http://127.0.0.1:8529"
  database: "relay"
`)

	t.Setenv("RTBH_LOG_RELAY_WORKERS", "16")

	cfg, err := Load(p, viper.New())
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
}

func TestLoad_InvalidWorkersRejected(t *testing.T) {
	p := writeConfigFile(t, `
workers: 0
docdb:
  base_url: "http://127.0.0.1:8529"
  database: "relay"
`)

	_, err := Load(p, viper.New())
	assert.Error(t, err)
}

func TestDefault_IsUsableBaseline(t *testing.T) {
	def := Default()
	assert.Equal(t, 8, def.Workers)
	assert.Equal(t, "info", def.LogLevel)
}
