package datastore

// DatasetName identifies one of the three documents loaded at startup.
type DatasetName string

const (
	DatasetCareer  DatasetName = "career"
	DatasetStreams DatasetName = "streams"
	DatasetExams   DatasetName = "exams"
)

// File is the document path relative to the data source.
func (n DatasetName) File() string {
	return string(n) + ".json"
}

// AllDatasets in load and report order.
var AllDatasets = []DatasetName{DatasetCareer, DatasetStreams, DatasetExams}
