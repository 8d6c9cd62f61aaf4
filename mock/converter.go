package mock

import "github.com/taxagent/taxagent"

var _ taxagent.TableConverter = (*TableConverter)(nil)

// TableConverter is a mock implementation of taxagent.TableConverter.
type TableConverter struct {
	ConvertFn func(xml string) (string, error)
}

func (c *TableConverter) Convert(xml string) (string, error) {
	return c.ConvertFn(xml)
}
