package utils

import (
	"os"
	"path/filepath"
	"strings"
)

func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OpenFile creates outputPath/fileSuffix/name.csv when makeDir is set,
// otherwise outputPath/name_fileSuffix.csv.
func OpenFile(makeDir bool, outputPath string, fileSuffix, name string) (*os.File, error) {
	if makeDir && fileSuffix != "" && fileSuffix != "." {
		dir := filepath.Join(outputPath, fileSuffix)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, err
		}
		return os.Create(filepath.Join(dir, name+".csv"))
	}
	if outputPath != "" {
		if err := os.MkdirAll(outputPath, 0750); err != nil {
			return nil, err
		}
	}
	if fileSuffix == "" || fileSuffix == "." {
		return os.Create(filepath.Join(outputPath, name+".csv"))
	}
	return os.Create(filepath.Join(outputPath, name+"_"+fileSuffix+".csv"))
}
