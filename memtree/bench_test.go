package memtree

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func seedTree(b *testing.B, n int) (*Tree, []string) {
	b.Helper()
	faker := gofakeit.New(12345)
	tree := New()
	paths := make([]string, n)
	for i := 0; i < n; i++ {
		paths[i] = fmt.Sprintf("data.category_%d.item_%d.value", i%10, i)
		if err := tree.SetString(paths[i], faker.HackerPhrase()); err != nil {
			b.Fatal(err)
		}
	}
	return tree, paths
}

func BenchmarkSet(b *testing.B) {
	tree := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.SetString(fmt.Sprintf("data.category_%d.item_%d.value", i%10, i), i)
	}
}

func BenchmarkGet(b *testing.B) {
	tree, paths := seedTree(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.GetString(paths[i%len(paths)])
	}
}

func BenchmarkSearchKey(b *testing.B) {
	tree, _ := seedTree(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.SearchKey("value")
	}
}

func BenchmarkExportJSON(b *testing.B) {
	tree, _ := seedTree(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.ExportJSON(); err != nil {
			b.Fatal(err)
		}
	}
}
