package settings

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gaiakodi/gaiacore/clock"
	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/where"
)

// Backups are ZIP archives holding the settings file and the key-value
// database at the archive root. A rolling window of snapshots is retained;
// imports refuse archives written by a schema generation older than the
// supported floor.

const backupPrefix = "settings-"

// archived names inside a backup, at the archive root.
const (
	archiveSettings = "settings.xml"
	archiveDatabase = "settings.db"
)

// Export writes a backup snapshot and prunes the rolling window down to
// the configured count.
func Export() error {
	name := fmt.Sprintf("%s%d.zip", backupPrefix, clock.Timestamp())
	path := filepath.Join(where.Backups(), name)

	var buffer bytes.Buffer
	archive := zip.NewWriter(&buffer)

	members := map[string]string{
		archiveSettings: where.Settings(),
		archiveDatabase: where.Database(),
	}
	for archived, source := range members {
		data, err := filesystem.API().ReadFile(source)
		if err != nil {
			// A fresh profile may lack the database; skip absentees.
			continue
		}
		writer, err := archive.Create(archived)
		if err != nil {
			return fmt.Errorf("create archive member %s: %w", archived, err)
		}
		if _, err := writer.Write(data); err != nil {
			return fmt.Errorf("write archive member %s: %w", archived, err)
		}
	}
	if err := archive.Close(); err != nil {
		return fmt.Errorf("finalize backup: %w", err)
	}

	if err := filesystem.API().WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	if err := SetInteger(key.InternalBackupTime, int(clock.Timestamp())); err != nil {
		log.Errorf("settings: record backup time: %v", err)
	}

	prune(GetInteger(key.BackupCount))
	return nil
}

// prune removes the oldest snapshots beyond the retained count.
func prune(retain int) {
	if retain < 1 {
		retain = 1
	}

	files, _, err := filesystem.ListDirectory(where.Backups())
	if err != nil {
		return
	}

	var snapshots []string
	for _, name := range files {
		if strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, ".zip") {
			snapshots = append(snapshots, name)
		}
	}
	// Timestamped names sort chronologically.
	sort.Strings(snapshots)

	for len(snapshots) > retain {
		_ = filesystem.DeleteFile(filepath.Join(where.Backups(), snapshots[0]))
		snapshots = snapshots[1:]
	}
}

// Latest returns the path of the newest snapshot, empty when none exist.
func Latest() string {
	files, _, err := filesystem.ListDirectory(where.Backups())
	if err != nil {
		return ""
	}
	newest := ""
	for _, name := range files {
		if strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, ".zip") && name > newest {
			newest = name
		}
	}
	if newest == "" {
		return ""
	}
	return filepath.Join(where.Backups(), newest)
}

// Import restores a backup snapshot. The embedded settings file's schema
// version gates the import: archives older than the supported floor are
// refused so a stale snapshot cannot roll the store backwards.
func Import(path string) error {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}

	members := map[string][]byte{}
	for _, file := range reader.File {
		opened, err := file.Open()
		if err != nil {
			return fmt.Errorf("open archive member %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(opened)
		_ = opened.Close()
		if err != nil {
			return fmt.Errorf("read archive member %s: %w", file.Name, err)
		}
		members[file.Name] = content
	}

	embedded, ok := members[archiveSettings]
	if !ok {
		return fmt.Errorf("backup holds no settings file")
	}
	if version := fileVersion(embedded); version < constant.SchemaVersion {
		return fmt.Errorf("backup schema %d older than supported %d", version, constant.SchemaVersion)
	}

	if err := filesystem.API().WriteFile(where.Settings(), embedded, 0o644); err != nil {
		return fmt.Errorf("restore settings: %w", err)
	}
	if content, ok := members[archiveDatabase]; ok {
		CloseDatabase()
		if err := filesystem.API().WriteFile(where.Database(), content, 0o644); err != nil {
			return fmt.Errorf("restore database: %w", err)
		}
	}

	Reset(false)
	return nil
}

// ImportOnStartup restores the newest snapshot, but only on a profile that
// has never recorded a backup: an existing timestamp means the live
// settings are newer than any snapshot.
func ImportOnStartup() error {
	if GetInteger(key.InternalBackupTime) > 0 {
		return nil
	}
	latest := Latest()
	if latest == "" {
		return nil
	}
	return Import(latest)
}
