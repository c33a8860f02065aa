package searchindex

// DataSource describes an Azure AI Search datasource connection.
type DataSource struct {
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Credentials DataSourceCredentials `json:"credentials"`
	Container   DataSourceContainer   `json:"container"`
	Description string                `json:"description,omitempty"`
}

type DataSourceCredentials struct {
	ConnectionString string `json:"connectionString"`
}

type DataSourceContainer struct {
	Name  string `json:"name"`
	Query string `json:"query,omitempty"`
}

// Field is one field of a search index schema.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Key         bool   `json:"key,omitempty"`
	Searchable  bool   `json:"searchable"`
	Filterable  bool   `json:"filterable"`
	Sortable    bool   `json:"sortable"`
	Facetable   bool   `json:"facetable"`
	Retrievable bool   `json:"retrievable"`
}

// Index is a search index definition.
type Index struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Indexer connects a datasource to an index.
type Indexer struct {
	Name            string           `json:"name"`
	DataSourceName  string           `json:"dataSourceName"`
	TargetIndexName string           `json:"targetIndexName"`
	Parameters      *IndexerParams   `json:"parameters,omitempty"`
	FieldMappings   []FieldMapping   `json:"fieldMappings,omitempty"`
	Schedule        *IndexerSchedule `json:"schedule,omitempty"`
}

type IndexerParams struct {
	Configuration map[string]any `json:"configuration,omitempty"`
}

type FieldMapping struct {
	SourceFieldName string `json:"sourceFieldName"`
	TargetFieldName string `json:"targetFieldName"`
}

type IndexerSchedule struct {
	Interval string `json:"interval"`
}

// IndexerStatus is the execution status of an indexer.
type IndexerStatus struct {
	Status     string                  `json:"status"`
	LastResult *IndexerExecutionResult `json:"lastResult"`
}

// IndexerExecutionResult is the outcome of one indexer run.
type IndexerExecutionResult struct {
	Status         string `json:"status"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	ItemsProcessed int    `json:"itemsProcessed"`
	ItemsFailed    int    `json:"itemsFailed"`
	StartTime      string `json:"startTime,omitempty"`
	EndTime        string `json:"endTime,omitempty"`
}

// Indexer execution result statuses reported by the service.
const (
	ExecutionStatusSuccess          = "success"
	ExecutionStatusInProgress       = "inProgress"
	ExecutionStatusTransientFailure = "transientFailure"
	ExecutionStatusPersistentError  = "persistentError"
	ExecutionStatusReset            = "reset"
)
