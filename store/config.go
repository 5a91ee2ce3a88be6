package store

// DynamoConfig holds configuration for the DynamoDB backend.
type DynamoConfig struct {
	// TableName is the DynamoDB table holding every collection.
	// Default: "mentorboard"
	TableName string
}

// DefaultDynamoConfig returns production defaults.
func DefaultDynamoConfig() DynamoConfig {
	return DynamoConfig{
		TableName: "mentorboard",
	}
}

// validate ensures config values are within acceptable bounds.
func (c *DynamoConfig) validate() {
	if c.TableName == "" {
		c.TableName = "mentorboard"
	}
}
