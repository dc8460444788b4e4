package model

type KeyValuePair struct {
	Key   string
	Value string
}
