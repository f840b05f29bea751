// Package data holds the static sample-program catalog served on the
// public samples route.
package data

import "wallfit/internal/model"

// SamplePrograms is the fixed catalog of program templates.
var SamplePrograms = []model.Program{
	{
		Title:       "Morning Energy Boost",
		Description: "Start your day with energizing exercises and balanced nutrition. Perfect for busy women who want to feel refreshed and ready to tackle the day.",
		Exercises: []string{
			"Sun Salutation Yoga",
			"Jumping Jacks",
			"Plank Hold",
			"Bodyweight Squats",
			"Mountain Climbers",
		},
		Nutrition: []string{
			"Greek yogurt with berries and granola",
			"Green smoothie with spinach and banana",
			"Oatmeal with almond butter and chia seeds",
			"Whole grain toast with avocado and eggs",
		},
	},
	{
		Title:       "Strength & Sculpt",
		Description: "Build lean muscle and boost metabolism with targeted strength training. Designed to help you feel strong and confident in your body.",
		Exercises: []string{
			"Dumbbell Squats",
			"Push-ups",
			"Lunges",
			"Dumbbell Rows",
			"Glute Bridges",
			"Tricep Dips",
		},
		Nutrition: []string{
			"Grilled chicken with quinoa and vegetables",
			"Protein smoothie with whey and berries",
			"Salmon with sweet potato and broccoli",
			"Lean turkey meatballs with zucchini noodles",
			"Cottage cheese with almonds and fruit",
		},
	},
	{
		Title:       "Cardio Fat Burn",
		Description: "High-intensity cardio workouts to torch calories and improve cardiovascular health. Great for weight loss and endurance building.",
		Exercises: []string{
			"Running or Jogging",
			"Burpees",
			"High Knees",
			"Jump Rope",
			"Bicycle Crunches",
		},
		Nutrition: []string{
			"Lean protein with leafy greens",
			"Apple slices with almond butter",
			"Grilled fish with asparagus",
			"Mixed berry salad with walnuts",
			"Egg white omelet with vegetables",
		},
	},
	{
		Title:       "Flexibility & Balance",
		Description: "Improve flexibility, balance, and mind-body connection through gentle yet effective movements. Perfect for stress relief and body awareness.",
		Exercises: []string{
			"Yoga Flow",
			"Pilates Core Work",
			"Standing Balance Poses",
			"Hip Stretches",
			"Spinal Twists",
		},
		Nutrition: []string{
			"Buddha bowl with tofu and vegetables",
			"Herbal tea with honey",
			"Quinoa salad with chickpeas",
			"Fresh fruit smoothie bowl",
			"Hummus with veggie sticks",
		},
	},
	{
		Title:       "Postpartum Recovery",
		Description: "Gentle exercises designed for new mothers to rebuild core strength and regain fitness safely. Focus on healing and gradual progression.",
		Exercises: []string{
			"Pelvic Floor Exercises",
			"Walking",
			"Modified Planks",
			"Wall Push-ups",
			"Gentle Stretching",
		},
		Nutrition: []string{
			"Lactation smoothie with oats and flaxseed",
			"Iron-rich spinach salad with lean beef",
			"Calcium-rich dairy or fortified alternatives",
			"Whole grain pasta with vegetables",
			"Hydrating coconut water and fresh fruits",
		},
	},
	{
		Title:       "Busy Mom Express",
		Description: "Quick 20-minute workouts that fit into your hectic schedule. Efficient exercises that deliver maximum results in minimum time.",
		Exercises: []string{
			"Tabata Training",
			"Kettlebell Swings",
			"Box Step-ups",
			"Medicine Ball Slams",
		},
		Nutrition: []string{
			"Overnight oats prepared in advance",
			"Pre-portioned protein snack packs",
			"One-pan chicken and vegetable bake",
			"Meal-prep grain bowls",
			"Quick protein shakes",
		},
	},
	{
		Title:       "Hormone Balance Wellness",
		Description: "Support hormonal health through targeted exercise and nutrition. Designed to help regulate cycles and reduce PMS symptoms.",
		Exercises: []string{
			"Low-Impact Cardio",
			"Resistance Band Training",
			"Yoga for Hormones",
			"Swimming or Water Aerobics",
			"Walking in Nature",
		},
		Nutrition: []string{
			"Cruciferous vegetables like broccoli",
			"Wild-caught fatty fish",
			"Flaxseeds and chia seeds",
			"Dark leafy greens with olive oil",
			"Fermented foods like kimchi or sauerkraut",
		},
	},
	{
		Title:       "Total Body Transformation",
		Description: "Comprehensive program combining cardio, strength, and flexibility for complete fitness. Achieve your best body with this balanced approach.",
		Exercises: []string{
			"Circuit Training",
			"Deadlifts",
			"HIIT Intervals",
			"Core Strengthening",
			"Dynamic Stretching",
			"Foam Rolling",
		},
		Nutrition: []string{
			"Balanced macros: protein, carbs, healthy fats",
			"Colorful vegetable variety daily",
			"Lean proteins at every meal",
			"Complex carbohydrates for energy",
			"Plenty of water and herbal teas",
		},
	},
}
