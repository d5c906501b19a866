package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	SetDiskDir("")
	t.Cleanup(func() { SetDiskDir("prefabs") })

	shooter, err := LoadShooterSpec("shooter.yaml")
	require.NoError(t, err)
	assert.Equal(t, "shooter", shooter.Name)
	assert.Equal(t, 0.1, shooter.Fire.AutomaticFireInterval)
	assert.Equal(t, 60.0, shooter.Aim.ZoomedFOV)
	assert.Equal(t, "rifle.yaml", shooter.DefaultWeapon)
	assert.Len(t, shooter.Sockets, 2)

	rifle, err := LoadWeaponSpec("prefabs/rifle.yaml")
	require.NoError(t, err)
	assert.Equal(t, 0.7, rifle.ThrowWeaponTime)
	assert.Equal(t, 10000.0, rifle.ThrowImpulse)
	assert.Equal(t, "muzzle", rifle.MuzzleSocket)

	level, err := LoadLevelSpec("level.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, level.Boxes)
	assert.NotEmpty(t, level.Weapons)
	for _, box := range level.Boxes {
		assert.NotNil(t, box.Color, box.Name)
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	SetDiskDir(dir)
	t.Cleanup(func() { SetDiskDir("prefabs") })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "rifle.yaml"), []byte("name: hot_rifle\nthrow_weapon_time: 1.5\n"), 0o644))

	rifle, err := LoadWeaponSpec("rifle.yaml")
	require.NoError(t, err)
	assert.Equal(t, "hot_rifle", rifle.Name)
	assert.Equal(t, 1.5, rifle.ThrowWeaponTime)

	// Files missing on disk fall back to the embedded copy.
	pistol, err := LoadWeaponSpec("pistol.yaml")
	require.NoError(t, err)
	assert.Equal(t, "pistol", pistol.Name)
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()
	SetDiskDir(dir)
	t.Cleanup(func() { SetDiskDir("prefabs") })

	_, err := LoadWeaponSpec("missing.yaml")
	assert.ErrorContains(t, err, "prefabs: load missing.yaml")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unterminated"), 0o644))
	_, err = LoadWeaponSpec("broken.yaml")
	assert.ErrorContains(t, err, "prefabs: unmarshal broken.yaml")
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    color.Color
		wantErr bool
	}{
		{"rgb", `c: "#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#fff"`, nil, true},
		{"not_hex", `c: "#zzzzzz"`, nil, true},
		{"not_scalar", `c: [1, 2]`, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var doc struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(tc.input), &doc)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, doc.C.Color)
		})
	}
}

func TestWatcherReportsChangedSpec(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rifle.yaml"), []byte("name: rifle\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "rifle.yaml", name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	rifle := filepath.Join(dir, "rifle.yaml")
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(rifle, []byte("name: rifle\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pistol.yaml"), []byte("name: pistol\n"), 0o644))

	var got []string
	deadline := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case name := <-w.Events:
			got = append(got, name)
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("expected two reports, got %v", got)
		}
	}
	assert.Equal(t, []string{"pistol.yaml", "rifle.yaml"}, got)

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected extra report %q", name)
	case <-time.After(3 * watchDebounce):
	}
}
