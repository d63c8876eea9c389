package config_test

import "github.com/0xalexb/jsonconfig/config"

// testDocument mirrors a small nested document:
//
//	{"key1": 1, "key2": {"key3": 3, "key4": {"key5": 5}}}
func testDocument() config.Mapping {
	return config.Mapping{
		{Key: "key1", Value: int64(1)},
		{Key: "key2", Value: config.Mapping{
			{Key: "key3", Value: int64(3)},
			{Key: "key4", Value: config.Mapping{
				{Key: "key5", Value: int64(5)},
			}},
		}},
	}
}
