package audio

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var extensions = map[string]bool{
	".mp3": true,
	".ogg": true,
	".wav": true,
}

// Locate walks dir for the known track names. Missing tracks are simply
// absent from the result.
func Locate(dir string) (map[Track]string, error) {
	found := map[Track]string{}
	if dir == "" {
		return found, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return found, nil
	}
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err || info.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(info.Name()))
		if !extensions[ext] {
			return nil
		}
		base := strings.TrimSuffix(info.Name(), path.Ext(info.Name()))
		for t, name := range trackNames {
			if strings.EqualFold(base, name) {
				if _, ok := found[Track(t)]; !ok {
					found[Track(t)] = p
				}
			}
		}
		return nil
	}); nil != err {
		return nil, fmt.Errorf("unable to walk assets directory: %w", err)
	}
	return found, nil
}
