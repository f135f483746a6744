package author

import (
	"strconv"

	"github.com/xiebiao/library/internal/domain/book"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func bookIDs(list []*book.Book) []uint {
	ids := make([]uint, len(list))
	for i, b := range list {
		ids[i] = b.ID
	}
	return ids
}
