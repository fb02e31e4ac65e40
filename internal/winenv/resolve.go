package winenv

import (
	"os"
	"strings"
)

// isWoW64 reports whether the current process is a 32-bit process running
// under WoW64 on a 64-bit Windows host. The OS sets PROCESSOR_ARCHITEW6432
// in that case (and only in that case), so it's a simple env lookup.
func isWoW64(env func(string) string) bool {
	return env("PROCESSOR_ARCHITEW6432") != ""
}

func winDir(env func(string) string) string {
	if w := env("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// windows path helpers below are hand-rolled rather than path/filepath:
// Windows path syntax (backslash separator, drive letters) must be
// processed the same way regardless of the host GOOS this package is
// built/tested on, and path/filepath's separator follows the build's
// GOOS, not the paths being manipulated.

func isAbsWindowsPath(p string) bool {
	if len(p) >= 2 && p[1] == ':' {
		return true
	}
	return strings.HasPrefix(p, `\\`) || strings.HasPrefix(p, `\`)
}

func joinWindowsPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, `\`) {
		return dir + name
	}
	return dir + `\` + name
}

func windowsExt(name string) string {
	i := strings.LastIndexAny(name, `\.`)
	if i < 0 || name[i] != '.' {
		return ""
	}
	return strings.ToLower(name[i:])
}

// remapSystem32 applies the Sysnative/System32 substitution a WoW64 process
// needs for an absolute path, returning the remapped path and whether a
// remap was applied (the caller only uses the remap if the remapped file
// actually exists).
//
// The two directions are not symmetric. Under WoW64, System32 -> Sysnative
// is the only remap a 32-bit process ever needs (its own System32 view is
// already the redirected one). Off WoW64 (a native 64-bit or genuine 32-bit
// process), a caller that explicitly names Sysnative is asking for the
// native System32 directory directly, so the substitution runs the other
// way: Sysnative -> System32.
func remapSystem32(absPath string, env func(string) string) (remapped string, applied bool) {
	windir := winDir(env)
	sys32 := windir + `\System32\`
	sysnative := windir + `\Sysnative\`

	if isWoW64(env) {
		if hasPrefixFold(absPath, sys32) {
			return sysnative + absPath[len(sys32):], true
		}
		return absPath, false
	}

	if hasPrefixFold(absPath, sysnative) {
		return sys32 + absPath[len(sysnative):], true
	}
	return absPath, false
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}

// candidateNames returns name, name.com, name.exe in that probe order. A
// name that already ends in .com or .exe is returned on its own.
func candidateNames(name string) []string {
	if ext := windowsExt(name); ext == ".com" || ext == ".exe" {
		return []string{name}
	}
	return []string{name, name + ".com", name + ".exe"}
}

func fileExists(stat func(string) (os.FileInfo, error), path string) bool {
	info, err := stat(path)
	return err == nil && !info.IsDir()
}

// ResolveExecutable implements Windows PATH resolution, including
// Sysnative/System32 WoW64 remapping. env and stat are injected
// so the whole algorithm is unit-testable from any GOOS; internal/winpty
// calls this with os.Getenv/os.Stat and the process PATH, or the
// SpawnOptions environment's PATH when one was supplied.
func ResolveExecutable(app, cwd string, pathEnv map[string]string, env func(string) string, stat func(string) (os.FileInfo, error)) (string, error) {
	if isAbsWindowsPath(app) {
		if remapped, applied := remapSystem32(app, env); applied && fileExists(stat, remapped) {
			return remapped, nil
		}
		return app, nil
	}

	if strings.ContainsAny(app, `\/`) {
		// Relative path with a directory component: resolve against cwd.
		resolved := joinWindowsPath(cwd, app)
		for _, candidate := range candidateNames(resolved) {
			if fileExists(stat, candidate) {
				return candidate, nil
			}
		}
		return resolved, nil
	}

	pathVal := pathEnv["PATH"]
	if pathVal == "" {
		pathVal = pathEnv["Path"]
	}
	if pathVal == "" {
		pathVal = env("PATH")
	}

	for _, dir := range searchDirs(pathVal, env) {
		for _, candidate := range candidateNames(joinWindowsPath(dir, app)) {
			if fileExists(stat, candidate) {
				return candidate, nil
			}
		}
	}

	return joinWindowsPath(cwd, app), nil
}

// searchDirs splits a Windows PATH value on ';' and, under WoW64, inserts a
// Sysnative entry immediately before any System32 entry.
func searchDirs(pathVal string, env func(string) string) []string {
	var dirs []string
	for _, dir := range strings.Split(pathVal, ";") {
		if dir == "" {
			continue
		}
		if isWoW64(env) && strings.Contains(strings.ToLower(dir), `\system32`) {
			dirs = append(dirs, strings.Replace(strings.ToLower(dir), `\system32`, `\sysnative`, 1))
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
