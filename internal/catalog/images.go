package catalog

// fallbackImage is served for any product without a mapped image
const fallbackImage = "/assets/idli.jpg"

// productImages maps product IDs to image assets. Several products reuse an
// image until dedicated photography lands.
var productImages = map[string]string{
	"1":  "/assets/idli.jpg",
	"2":  "/assets/dosa.jpg",
	"3":  "/assets/ragi-dosa.jpg",
	"4":  "/assets/ragi-dosa.jpg",
	"5":  "/assets/upma.jpg",
	"6":  "/assets/pongal.jpg",
	"7":  "/assets/vada.jpg",
	"8":  "/assets/pongal.jpg",
	"9":  "/assets/idli.jpg",
	"10": "/assets/appam.jpg",
	"11": "/assets/idli.jpg",
	"12": "/assets/pongal.jpg",
	"13": "/assets/dosa.jpg",
	"14": "/assets/upma.jpg",
	"15": "/assets/idli.jpg",
	"16": "/assets/ragi-dosa.jpg",
	"17": "/assets/pongal.jpg",
	"18": "/assets/dosa.jpg",
}

// ResolveImage maps a product ID to its display image, falling back to the
// default asset for unmapped IDs.
func ResolveImage(productID string) string {
	if img, ok := productImages[productID]; ok {
		return img
	}
	return fallbackImage
}
