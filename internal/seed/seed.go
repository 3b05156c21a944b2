// Package seed builds the initial catalog used when nothing is persisted yet.
package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/arogyasagar/storefront/internal/model"
)

// ProductsPerCategory is how many products are generated for each category.
const ProductsPerCategory = 20

type categoryData struct {
	images     []string
	bases      []string
	adjectives []string
	priceMin   int
	priceMax   int
}

const unsplash = "https://images.unsplash.com/photo-%s?q=80&w=600&auto=format&fit=crop"

func img(id string) string {
	return fmt.Sprintf(unsplash, id)
}

var categories = map[string]categoryData{
	model.CategoryImmunityEnergy: {
		images:     []string{img("1512069772995-ec65ed456eb3"), img("1546843825-ac63b5e31fa9"), img("1629196911514-cfd8d628b26e")},
		bases:      []string{"Ashwagandha", "Shilajit", "Chyawanprash", "Giloy", "Amla", "Moringa", "Spirulina", "Ginseng", "Turmeric Curcumin", "Immunity Drops"},
		adjectives: []string{"Gold", "Premium", "Organic", "Pure", "Vitality", "Power", "Daily", "Forte", "Max", "Ultra"},
		priceMin:   399, priceMax: 1299,
	},
	model.CategoryGeneralWellness: {
		images:     []string{img("1626438865324-4f93318991b9"), img("1540420773420-3366772f4999"), img("1615486511269-a7b5d513fa0e")},
		bases:      []string{"Triphala", "Neem", "Aloe Vera", "Wheatgrass", "Gokshura", "Manjistha", "Brahmi", "Shatavari", "Punarnava", "Liver Detox"},
		adjectives: []string{"Balance", "Digest", "Cleanse", "Whole", "Natural", "Essentials", "Care", "Life", "Veda", "Roots"},
		priceMin:   199, priceMax: 699,
	},
	model.CategoryHerbalTeas: {
		images:     []string{img("1597481499750-3e6b22637e12"), img("1576092768241-dec231879fc3"), img("1627435601361-ec25f5b1d0e5"), img("1563911302283-d2bc129e7c1f")},
		bases:      []string{"Green Tea", "Tulsi Tea", "Chamomile Blend", "Hibiscus Infusion", "Ginger Cardamom", "Masala Chai", "Peppermint Detox", "Jasmine Pearls", "Lemon Grass", "Sleep Tea"},
		adjectives: []string{"Himalayan", "Calming", "Energizing", "Classic", "Royal", "Soothing", "Detox", "Slimming", "Fresh", "Aromatic"},
		priceMin:   250, priceMax: 850,
	},
	model.CategoryOrganicHoney: {
		images:     []string{img("1587049352846-4a222e784d38"), img("1558642452-9d2a7deb7f62"), img("1612475498348-0702087933a3")},
		bases:      []string{"Wild Honey", "Tulsi Honey", "Multiflora Honey", "Acacia Honey", "Forest Raw Honey", "Ginger Honey", "Saffron Honey", "Mustard Honey", "Eucalyptus Honey", "Berry Honey"},
		adjectives: []string{"Raw", "Unfiltered", "Pure", "Golden", "Sweet", "Mountain", "Wild", "Organic", "Nectar", "Bee"},
		priceMin:   350, priceMax: 1500,
	},
	model.CategoryEssentialOils: {
		images:     []string{img("1608248597279-f99d160bfbc8"), img("1572635196237-14b3f281503f"), img("1611079830811-865dd442616a")},
		bases:      []string{"Lavender Oil", "Eucalyptus Oil", "Peppermint Oil", "Tea Tree Oil", "Rosemary Oil", "Lemongrass Oil", "Sandalwood Oil", "Frankincense", "Jasmine Oil", "Ylang Ylang"},
		adjectives: []string{"Therapeutic", "Aromatic", "Distilled", "Essence", "Calm", "Pure", "Extract", "Elixir", "Mood", "Sense"},
		priceMin:   299, priceMax: 1200,
	},
	model.CategorySpicesSuperfoods: {
		images:     []string{img("1596040033229-a9821ebd058d"), img("1532336414038-cf00d4797c59"), img("1615485925694-a031e897137b")},
		bases:      []string{"Turmeric Powder", "Black Pepper", "Cinnamon Sticks", "Cardamom", "Clove Buds", "Saffron Strands", "Chia Seeds", "Flax Seeds", "Quinoa", "Moringa Powder"},
		adjectives: []string{"Organic", "Whole", "Ground", "Premium", "Export Quality", "Farm Fresh", "Authentic", "Spicy", "Rich", "Flavor"},
		priceMin:   150, priceMax: 2500,
	},
	model.CategoryHairSkinCare: {
		images:     []string{img("1615397349754-cfa2066a298e"), img("1556228578-8c89e6adf883"), img("1598440947619-2c35fc9aa908")},
		bases:      []string{"Face Wash", "Hair Oil", "Shampoo", "Conditioner", "Face Serum", "Body Lotion", "Face Pack", "Hair Mask", "Massage Oil", "Soap"},
		adjectives: []string{"Glow", "Radiance", "Silk", "Strong", "Nourish", "Hydrate", "Clear", "Soft", "Revive", "Shine"},
		priceMin:   250, priceMax: 1500,
	},
	model.CategoryPainRelief: {
		images:     []string{img("1632517594943-40e9499dfd30"), img("1584308666744-24d5c474f2ae")},
		bases:      []string{"Relief Oil", "Balm", "Spray", "Capsules", "Ointment", "Gel", "Patch", "Roll-on", "Tablet", "Liniment"},
		adjectives: []string{"Fast Action", "Deep", "Instant", "Muscle", "Joint", "Orthopedic", "Strong", "Advanced", "Natural", "Effective"},
		priceMin:   150, priceMax: 800,
	},
	model.CategoryChronicDiseases: {
		images:     []string{img("1550572017-ed1086058d84"), img("1585435557343-3b092031a831")},
		bases:      []string{"Diabetes Care", "BP Control", "Cholesterol Aid", "Thyroid Balance", "Heart Care", "Liver Support", "Kidney Detox", "Lung Care", "Arthritis Aid", "Sugar Balance"},
		adjectives: []string{"Control", "Regulator", "Support", "Care", "Health", "Management", "System", "Guard", "Shield", "Defender"},
		priceMin:   400, priceMax: 2000,
	},
	model.CategoryMentalWellness: {
		images:     []string{img("1544367563-12123d8965cd"), img("1605371924599-2d0365da1ae0")},
		bases:      []string{"Brain Tonic", "Focus Capsules", "Sleep Aid", "Stress Relief", "Mood Enhancer", "Memory Booster", "Calm Drops", "Relax Tea", "Mind Power", "Peace Tablets"},
		adjectives: []string{"Zen", "Focus", "Calm", "Rest", "Mind", "Cognitive", "Serenity", "Bliss", "Smart", "Deep"},
		priceMin:   350, priceMax: 1200,
	},
}

// Products generates the catalog deterministically from seed. Ids are
// sequential strings starting at "1", categories in model.Categories order.
func Products(seed uint64) []model.Product {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	products := make([]model.Product, 0, len(model.Categories)*ProductsPerCategory)
	id := 1

	for _, category := range model.Categories {
		data := categories[category]
		for range ProductsPerCategory {
			base := data.bases[rng.IntN(len(data.bases))]
			adj := data.adjectives[rng.IntN(len(data.adjectives))]
			image := data.images[rng.IntN(len(data.images))]
			price := rng.IntN(data.priceMax-data.priceMin) + data.priceMin
			rating := math.Round((4+rng.Float64())*10) / 10
			reviews := rng.IntN(500) + 10

			products = append(products, model.Product{
				ID:          strconv.Itoa(id),
				Name:        adj + " " + base,
				Description: fmt.Sprintf("Premium %s product. Authentic Ayurvedic formulation for holistic health using %s.", strings.ToLower(category), base),
				Price:       price,
				Category:    category,
				Image:       image,
				Rating:      rating,
				Reviews:     reviews,
				Benefits:    []string{"Natural Ingredients", "Chemical Free", "Doctor Verified", "Holistic Cure"},
				Ingredients: []string{base, "Herbal Extract", "Natural Preservatives"},
				InStock:     true,
			})
			id++
		}
	}
	return products
}

func Doctors() []model.Doctor {
	return []model.Doctor{
		{ID: "d1", Name: "Dr. Aarav Sharma", Specialty: "Panchakarma Specialist", Experience: 15, Image: img("1612349317150-e413f6a5b16d"), Available: true, Price: 1500, Rating: 4.9, Bio: "Expert in detoxification therapies and chronic lifestyle disorders."},
		{ID: "d2", Name: "Dr. Priya Kapoor", Specialty: "Skin & Hair (Dermatology)", Experience: 8, Image: img("1559839734-2b71ea197ec2"), Available: true, Price: 1000, Rating: 4.7, Bio: "Specializes in Ayurvedic aesthetics and treating skin conditions naturally."},
		{ID: "d3", Name: "Dr. Rajesh Gupta", Specialty: "General Ayurveda & Diabetes", Experience: 20, Image: img("1537368910025-700350fe46c7"), Available: false, Price: 1200, Rating: 4.8, Bio: "Renowned for reversing Type-2 Diabetes through diet and herbs."},
		{ID: "d4", Name: "Dr. Ananya Singh", Specialty: "Mental Wellness & Psychology", Experience: 12, Image: img("1594824476967-48c8b964273f"), Available: true, Price: 1400, Rating: 4.9, Bio: "Helping patients overcome anxiety and depression using Medhya Rasayanas and counseling."},
		{ID: "d5", Name: "Dr. Vikram Malhotra", Specialty: "Sexual Wellness & Fertility", Experience: 18, Image: img("1622253692010-333f2da6031d"), Available: true, Price: 2000, Rating: 4.9, Bio: "Specialist in Vajikarana therapy for reproductive health and vitality."},
		{ID: "d6", Name: "Dr. Sunita Rao", Specialty: "Diet & Nutrition (Ahaar Vihar)", Experience: 10, Image: img("1651008376811-b90baee60c1f"), Available: true, Price: 800, Rating: 4.6, Bio: "Curating personalized Ayurvedic diet plans for weight management and gut health."},
	}
}

func Therapies() []model.Therapy {
	return []model.Therapy{
		{ID: "t1", Name: "Abhyanga", Duration: "60 mins", Price: 2500, Description: "Full body massage with warm herbal oils to rejuvenate the body and mind.", Image: img("1544161515-4ab6ce6db874")},
		{ID: "t2", Name: "Shirodhara", Duration: "45 mins", Price: 3000, Description: "Continuous pouring of warm oil on the forehead to relieve stress and improve sleep.", Image: img("1600334089648-b0d9d3028eb2")},
		{ID: "t3", Name: "Panchakarma Detox", Duration: "7 Days", Price: 15000, Description: "Complete 5-stage detoxification process tailored to your dosha.", Image: img("1519823551278-64ac92734fb1")},
	}
}
