package badger

import "fmt"

// Key prefixes for different data types
const (
	jobRecordPrefix = "jobrec"
)

// makeJobRecordKey generates a key for an embedding record by job ID.
func makeJobRecordKey(jobID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", jobRecordPrefix, jobID))
}
