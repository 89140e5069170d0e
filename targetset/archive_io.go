package targetset

import (
	"os"

	"github.com/darkace1998/vkradixsort/archive"
)

func openArchiveFile(path string) (*archive.Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return archive.Open(data)
}
