package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	dr "github.com/alessandromagnani17/dcmread"
)

/*
===============================================================================
    Util: View DICOM File
===============================================================================
*/

var baseFile = filepath.Base(os.Args[0])

func check(err error) {
	if err != nil {
		dr.Fatalf("error: %v", err)
	}
}

func usage() {
	fmt.Printf("dcmread version %s\n", dr.DCMReadVersion)
	fmt.Printf("usage: %s file_or_dir\n", baseFile)
	os.Exit(1)
}

func main() {
	dr.GetConfig()
	if len(os.Args) == 2 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		usage()
	}
	if len(os.Args) != 2 {
		usage()
	}
	stat, err := os.Stat(os.Args[1])
	check(err)
	if isDir := stat.IsDir(); !isDir {
		check(dr.DumpAllTags(os.Args[1], os.Stdout))
	} else {
		var errorCount, successCount atomic.Int64
		err := dr.ConcurrentlyWalkDir(os.Args[1], func(path string) {
			_, err := dr.ParseFile(path)
			basePath := filepath.Base(path)
			if err != nil {
				dr.Errorf(`error parsing "%s": %v`, basePath, err)
				errorCount.Add(1)
				return
			}
			successCount.Add(1)
			dr.Debugf(`parsed "%s"`, basePath)
		})
		check(err)
		if errorCount.Load() == 0 {
			dr.Infof("parsed %d files without errors", successCount.Load())
		} else {
			dr.Infof("parsed %d files without errors, and failed to parse %d files", successCount.Load(), errorCount.Load())
		}
	}
}
