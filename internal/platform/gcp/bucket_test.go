package gcp

import "testing"

func testBucketService() *bucketService {
	return &bucketService{
		buckets: map[BucketCategory]string{
			BucketCategoryProductImages: "product-images",
			BucketCategoryHeroSlides:    "hero-slides",
		},
	}
}

func TestParsePublicURL(t *testing.T) {
	bs := testBucketService()

	category, key, err := bs.ParsePublicURL("https://storage.googleapis.com/product-images/abc-123.jpg")
	if err != nil {
		t.Fatalf("ParsePublicURL: %v", err)
	}
	if category != BucketCategoryProductImages {
		t.Fatalf("wrong category: %s", category)
	}
	if key != "abc-123.jpg" {
		t.Fatalf("wrong key: %s", key)
	}
}

func TestParsePublicURLUnknownBucket(t *testing.T) {
	bs := testBucketService()
	if _, _, err := bs.ParsePublicURL("https://storage.googleapis.com/some-other-bucket/x.png"); err == nil {
		t.Fatalf("expected error for unknown bucket")
	}
}

func TestParsePublicURLMalformed(t *testing.T) {
	bs := testBucketService()
	for _, url := range []string{
		"",
		"not-a-url",
		"https://storage.googleapis.com/product-images/",
	} {
		if _, _, err := bs.ParsePublicURL(url); err == nil {
			t.Fatalf("expected error for %q", url)
		}
	}
}

func TestGetPublicURL(t *testing.T) {
	bs := testBucketService()
	got := bs.GetPublicURL(BucketCategoryHeroSlides, "slide.webp")
	want := "https://storage.googleapis.com/hero-slides/slide.webp"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestContentTypeForKey(t *testing.T) {
	cases := map[string]string{
		"a.jpg":        "image/jpeg",
		"a.JPEG":       "image/jpeg",
		"a.png?x=1":    "image/png",
		"a.webp":       "image/webp",
		"brochure.pdf": "application/pdf",
		"a.unknown":    "",
		"":             "",
	}
	for key, want := range cases {
		if got := contentTypeForKey(key); got != want {
			t.Fatalf("contentTypeForKey(%q) = %q, want %q", key, got, want)
		}
	}
}
