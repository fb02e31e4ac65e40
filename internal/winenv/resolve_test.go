package winenv

import (
	"os"
	"testing"
	"time"
)

type fakeFileInfo struct{ isDir bool }

func (f fakeFileInfo) Name() string       { return "" }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() any           { return nil }

func fakeStat(existing map[string]bool) func(string) (os.FileInfo, error) {
	return func(path string) (os.FileInfo, error) {
		if existing[path] {
			return fakeFileInfo{}, nil
		}
		return nil, os.ErrNotExist
	}
}

func fakeEnv(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestResolveExecutableAbsoluteNoRemapWhenNotWoW64(t *testing.T) {
	env := fakeEnv(map[string]string{"WINDIR": `C:\Windows`})
	stat := fakeStat(nil)

	got, err := ResolveExecutable(`C:\Windows\System32\cmd.exe`, `C:\`, nil, env, stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `C:\Windows\System32\cmd.exe` {
		t.Fatalf("got %q, want unchanged absolute path", got)
	}
}

func TestResolveExecutableRemapsSystem32UnderWoW64WhenSysnativeExists(t *testing.T) {
	env := fakeEnv(map[string]string{
		"WINDIR":                 `C:\Windows`,
		"PROCESSOR_ARCHITEW6432": "AMD64",
	})
	stat := fakeStat(map[string]bool{`C:\Windows\Sysnative\conhost.exe`: true})

	got, err := ResolveExecutable(`C:\Windows\System32\conhost.exe`, `C:\`, nil, env, stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `C:\Windows\Sysnative\conhost.exe` {
		t.Fatalf("got %q, want Sysnative remap", got)
	}
}

func TestResolveExecutableKeepsSystem32WhenSysnativeMissing(t *testing.T) {
	env := fakeEnv(map[string]string{
		"WINDIR":                 `C:\Windows`,
		"PROCESSOR_ARCHITEW6432": "AMD64",
	})
	stat := fakeStat(nil)

	got, err := ResolveExecutable(`C:\Windows\System32\conhost.exe`, `C:\`, nil, env, stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `C:\Windows\System32\conhost.exe` {
		t.Fatalf("got %q, want original path (remap target doesn't exist)", got)
	}
}

func TestResolveExecutableRemapsSysnativeToSystem32WhenNotWoW64(t *testing.T) {
	env := fakeEnv(map[string]string{"WINDIR": `C:\Windows`})
	stat := fakeStat(map[string]bool{`C:\Windows\System32\conhost.exe`: true})

	got, err := ResolveExecutable(`C:\Windows\Sysnative\conhost.exe`, `C:\`, nil, env, stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `C:\Windows\System32\conhost.exe` {
		t.Fatalf("got %q, want System32 remap", got)
	}
}

func TestResolveExecutableKeepsSysnativeWhenSystem32MissingAndNotWoW64(t *testing.T) {
	env := fakeEnv(map[string]string{"WINDIR": `C:\Windows`})
	stat := fakeStat(nil)

	got, err := ResolveExecutable(`C:\Windows\Sysnative\conhost.exe`, `C:\`, nil, env, stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `C:\Windows\Sysnative\conhost.exe` {
		t.Fatalf("got %q, want original path (remap target doesn't exist)", got)
	}
}

func TestResolveExecutableSearchesPathWithExtensionProbing(t *testing.T) {
	env := fakeEnv(nil)
	stat := fakeStat(map[string]bool{`C:\tools\mytool.exe`: true})

	got, err := ResolveExecutable("mytool", `C:\work`, map[string]string{"PATH": `C:\nope;C:\tools`}, env, stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `C:\tools\mytool.exe` {
		t.Fatalf("got %q, want resolved via PATH with .exe probe", got)
	}
}

func TestResolveExecutableFallsBackToCwd(t *testing.T) {
	env := fakeEnv(nil)
	stat := fakeStat(nil)

	got, err := ResolveExecutable("ghost", `C:\work`, map[string]string{"PATH": ""}, env, stat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `C:\work\ghost`
	if got != want {
		t.Fatalf("got %q, want fallback %q", got, want)
	}
}
