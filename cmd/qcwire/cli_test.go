package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qcwire/config"
)

const moleculeJSON = `{
	"schema_name": "qcschema_molecule",
	"symbols": ["O", "H", "H"],
	"geometry": [0, 0, 0, 0, 0, 2, 0, 2, 0],
	"molecular_charge": 0
}`

const badMoleculeJSON = `{
	"schema_name": "qcschema_molecule",
	"symbols": ["O", "H", "H"],
	"geometry": [0, 0, 0],
	"molecular_charge": 0
}`

const moleculeYAML = `
schema_name: qcschema_molecule
symbols: ["O", "H", "H"]
geometry: [0, 0, 0, 0, 0, 2, 0, 2, 0]
molecular_charge: 0
`

func writePayload(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	return path
}

func TestValidateCmd(t *testing.T) {
	logger = zap.NewNop()

	good := writePayload(t, "water.json", moleculeJSON)
	if err := runValidate(&cobra.Command{}, []string{good}); err != nil {
		t.Fatalf("validate of a good file failed: %v", err)
	}

	bad := writePayload(t, "broken.json", badMoleculeJSON)
	err := runValidate(&cobra.Command{}, []string{good, bad})
	if err == nil {
		t.Fatal("validate should fail on the broken file")
	}
	if !strings.Contains(err.Error(), "broken.json") {
		t.Fatalf("error %q does not name the broken file", err)
	}
}

func TestValidateCmd_YAML(t *testing.T) {
	logger = zap.NewNop()

	path := writePayload(t, "water.yaml", moleculeYAML)
	if err := runValidate(&cobra.Command{}, []string{path}); err != nil {
		t.Fatalf("validate of a yaml file failed: %v", err)
	}
}

func TestValidateCmd_MissingFile(t *testing.T) {
	logger = zap.NewNop()

	err := runValidate(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "absent.json")})
	if err == nil {
		t.Fatal("validate should fail on an absent file")
	}
}

func TestInspectCmd(t *testing.T) {
	logger = zap.NewNop()

	path := writePayload(t, "water.json", moleculeJSON)
	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	if err := runInspect(cmd, []string{path}); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "qcschema_molecule v2") {
		t.Fatalf("inspect output missing schema line:\n%s", out)
	}
	if !strings.Contains(out, "(O H H)") {
		t.Fatalf("inspect output missing symbols:\n%s", out)
	}
}

func TestArchiveCmds(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.Default()
	cfg.ArchivePath = filepath.Join(t.TempDir(), "archive.db")

	path := writePayload(t, "water.json", moleculeJSON)

	// put
	putID = ""
	putCmd := &cobra.Command{}
	putBuf := new(bytes.Buffer)
	putCmd.SetOut(putBuf)
	if err := runArchivePut(putCmd, []string{path}); err != nil {
		t.Fatalf("archive put failed: %v", err)
	}
	id := strings.TrimSpace(putBuf.String())
	if id == "" {
		t.Fatal("archive put printed no id")
	}

	// get
	getOut = ""
	getCmd := &cobra.Command{}
	getBuf := new(bytes.Buffer)
	getCmd.SetOut(getBuf)
	if err := runArchiveGet(getCmd, []string{id}); err != nil {
		t.Fatalf("archive get failed: %v", err)
	}
	if !strings.Contains(getBuf.String(), `"qcschema_molecule"`) {
		t.Fatalf("archive get output is not the molecule payload:\n%s", getBuf.String())
	}

	// list
	listKind = ""
	listCmd := &cobra.Command{}
	listBuf := new(bytes.Buffer)
	listCmd.SetOut(listBuf)
	if err := runArchiveList(listCmd, []string{}); err != nil {
		t.Fatalf("archive list failed: %v", err)
	}
	if !strings.Contains(listBuf.String(), id) {
		t.Fatalf("archive list does not mention %s:\n%s", id, listBuf.String())
	}

	// rm
	if err := runArchiveRm(&cobra.Command{}, []string{id}); err != nil {
		t.Fatalf("archive rm failed: %v", err)
	}
	if err := runArchiveGet(&cobra.Command{}, []string{id}); err == nil {
		t.Fatal("archive get should fail after rm")
	}
}
