package service

import (
	"strings"

	"mintkitchen/api/internal/domain"
)

type keywordRule struct {
	keywords []string
	bucket   domain.Bucket
}

// Upstream category tagging is inconsistent, so category names are checked
// first and item names are the fallback for untagged items.
var (
	categoryRules = []keywordRule{
		{[]string{"dosa"}, domain.BucketDosas},
		{[]string{"biryani"}, domain.BucketBiryanis},
		{[]string{"curry", "curries"}, domain.BucketCurries},
	}
	nameRules = []keywordRule{
		{[]string{"dosa"}, domain.BucketDosas},
		{[]string{"biryani"}, domain.BucketBiryanis},
		{[]string{"curry", "butter chicken", "paneer butter"}, domain.BucketCurries},
	}
)

// Categorize assigns an item to exactly one bucket. The first matching rule wins.
func Categorize(item domain.MenuItem) domain.Bucket {
	if item.Category != "" {
		return match(categoryRules, item.Category)
	}
	return match(nameRules, item.Name)
}

func match(rules []keywordRule, text string) domain.Bucket {
	text = strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.bucket
			}
		}
	}
	return domain.BucketOther
}
