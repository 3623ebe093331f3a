package dcmread

import (
	"os"
	"path/filepath"
	"sync"
)

// ConcurrentlyWalkDir recursively traverses a directory and calls `onFile` for each found file inside a goroutine.
// Returns once every file has been visited.
func ConcurrentlyWalkDir(dirPath string, onFile func(file string)) error {
	guard := make(chan bool, GetConfig().OpenFileLimit) // limits number of concurrently open files
	var files []string

	err := filepath.Walk(dirPath, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		files = append(files, filePath)
		return nil
	})
	if err != nil {
		return err
	}

	// now goroutine each file
	wg := sync.WaitGroup{}
	for _, filePath := range files {
		guard <- true // would block if guard channel is already filled
		wg.Add(1)
		go func(path string) {
			onFile(path)
			<-guard
			wg.Done()
		}(filePath)
	}
	wg.Wait()
	return nil
}
