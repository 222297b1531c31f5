package shareid

import (
	"errors"

	"github.com/sqids/sqids-go"
)

var ErrInvalidID = errors.New("invalid share id")

const minLength = 8

// Codec turns store-generated row ids into the opaque ids shown in the API.
type Codec struct {
	sqids *sqids.Sqids
}

func New() (*Codec, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: minLength,
	})
	if err != nil {
		return nil, err
	}
	return &Codec{sqids: s}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	if id < 0 {
		return "", ErrInvalidID
	}
	return c.sqids.Encode([]uint64{uint64(id)})
}

// Decode only accepts the canonical encoding of a single id, so every row has
// exactly one public id.
func (c *Codec) Decode(public string) (int64, error) {
	nums := c.sqids.Decode(public)
	if len(nums) != 1 || nums[0] > uint64(1<<63-1) {
		return 0, ErrInvalidID
	}
	canonical, err := c.sqids.Encode(nums)
	if err != nil || canonical != public {
		return 0, ErrInvalidID
	}
	return int64(nums[0]), nil
}
