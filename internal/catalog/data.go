package catalog

// Trip content as published on the site. Tier and add-on names double as
// pricing markers ("Group Package", "Custom Timing", "VIP", meal words), so
// edit them together with internal/pricing.

var englishTrips = []Trip{
	{
		ID:       1,
		Language: LanguageEN,
		Title:    "AlUla Heritage Tour",
		Location: "AlUla, Madinah Province",
		Duration: "Full day",
		FullDescription: "Walk through Hegra's Nabataean tombs, the Old Town of AlUla and " +
			"Elephant Rock with a licensed local guide. Transport from AlUla hotels included.",
		Pricing: []PricingTier{
			{Name: "Standard", Price: "100 SAR per person", Description: "Shared guide, entry tickets and transport"},
			{Name: "Premium", Price: "250 SAR per person", Description: "Small group, private vehicle, refreshments", TourType: TourTypePrivate},
			{Name: "Group Package", Price: "3500 SAR Total", Description: "Whole tour for up to 15 guests", TourType: TourTypeGroup},
		},
		AddOns: []AddOn{
			{Name: "Traditional Lunch", Price: "80 SAR per person", Description: "Paid at the restaurant"},
			{Name: "Photography Session", Price: "150 SAR per person", Description: "One hour with a professional photographer"},
			{Name: "VIP Experience", Price: "900 SAR per person", Description: "Private guide, luxury SUV and lounge access"},
			{Name: "Custom Timing - Individual", Price: "500 SAR per person", Description: "Start at any hour you choose"},
			{Name: "Custom Timing - Group", Price: "3700 SAR", Description: "Dedicated departure for your group"},
		},
	},
	{
		ID:       2,
		Language: LanguageEN,
		Title:    "Edge of the World Hike",
		Location: "Jebel Fihrayn, Riyadh",
		Duration: "8 hours",
		FullDescription: "Off-road drive to the Tuwaiq escarpment, a guided hike along the cliffs " +
			"and sunset over the Acacia valley.",
		Pricing: []PricingTier{
			{Name: "Standard", Price: "180 SAR per person", Description: "4x4 transport, guide and water"},
			{Name: "Private Tour", Price: "1200 SAR Total", Description: "Your own vehicle and guide, up to 4 guests", TourType: TourTypePrivate},
			{Name: "Group Package", Price: "150 SAR per person", Description: "Discounted rate for groups of 8 or more", TourType: TourTypeGroup},
		},
		AddOns: []AddOn{
			{Name: "Sunset Dinner", Price: "120 SAR per person", Description: "Camp dinner, paid on site"},
			{Name: "Hiking Gear Rental", Price: "60 SAR per person", Description: "Poles, headlamp and day pack"},
			{Name: "VIP Experience", Price: "1500 SAR per person", Description: "Private camp, chef and photographer"},
		},
	},
	{
		ID:       3,
		Language: LanguageEN,
		Title:    "Red Sea Diving Day",
		Location: "Obhur, Jeddah",
		Duration: "6 hours",
		FullDescription: "Boat trip to two reef sites north of Jeddah with certified instructors. " +
			"Beginners welcome.",
		Pricing: []PricingTier{
			{Name: "Discovery Dive", Price: "450 SAR", Description: "Two guided dives with full equipment"},
			{Name: "Family Package", Price: "1600 SAR Total", Description: "Boat for a family of up to 5, snorkelling included", TourType: TourTypePrivate},
		},
		AddOns: []AddOn{
			{Name: "Seafood Lunch", Price: "95 SAR per person", Description: "Served on board, paid to the crew"},
			{Name: "Underwater Video", Price: "200 SAR per person", Description: "Edited clip of your dives"},
			{Name: "Custom Timing - Individual", Price: "300 SAR per person", Description: "Early or late departure"},
		},
	},
}

var arabicTrips = []Trip{
	{
		ID:       1,
		Language: LanguageAR,
		Title:    "جولة العلا التراثية",
		Location: "العلا، منطقة المدينة المنورة",
		Duration: "يوم كامل",
		FullDescription: "جولة بين مقابر الحِجر النبطية والبلدة القديمة وجبل الفيل " +
			"برفقة مرشد محلي مرخص، مع التنقل من فنادق العلا.",
		Pricing: []PricingTier{
			{Name: "الباقة العادية", Price: "100 ريال للشخص", Description: "مرشد مشترك وتذاكر الدخول والنقل"},
			{Name: "الباقة المميزة", Price: "250 ريال للشخص", Description: "مجموعة صغيرة وسيارة خاصة ومرطبات", TourType: TourTypePrivate},
			{Name: "باقة المجموعة", Price: "3500 ريال إجمالي", Description: "الجولة كاملة حتى 15 ضيفاً", TourType: TourTypeGroup},
		},
		AddOns: []AddOn{
			{Name: "غداء تقليدي", Price: "80 ريال للشخص", Description: "يدفع في المطعم"},
			{Name: "جلسة تصوير", Price: "150 ريال للشخص", Description: "ساعة مع مصور محترف"},
			{Name: "تجربة VIP", Price: "900 ريال للشخص", Description: "مرشد خاص وسيارة فاخرة"},
			{Name: "توقيت مخصص - فردي", Price: "500 ريال للشخص", Description: "ابدأ في الوقت الذي تختاره"},
			{Name: "توقيت مخصص - مجموعة", Price: "3700 ريال", Description: "رحلة مخصصة لمجموعتك"},
		},
	},
	{
		ID:       2,
		Language: LanguageAR,
		Title:    "رحلة حافة العالم",
		Location: "جبل فهرين، الرياض",
		Duration: "8 ساعات",
		FullDescription: "قيادة على الطرق الوعرة إلى جرف طويق ومشي مع مرشد على الحافة " +
			"ومشاهدة الغروب فوق وادي السلم.",
		Pricing: []PricingTier{
			{Name: "الباقة العادية", Price: "180 ريال للشخص", Description: "نقل بسيارات الدفع الرباعي ومرشد ومياه"},
			{Name: "جولة خاصة", Price: "1200 ريال إجمالي", Description: "سيارة ومرشد خاصان حتى 4 ضيوف", TourType: TourTypePrivate},
			{Name: "باقة المجموعة", Price: "150 ريال للشخص", Description: "سعر مخفض للمجموعات من 8 أشخاص", TourType: TourTypeGroup},
		},
		AddOns: []AddOn{
			{Name: "عشاء الغروب", Price: "120 ريال للشخص", Description: "عشاء في المخيم يدفع في الموقع"},
			{Name: "استئجار معدات المشي", Price: "60 ريال للشخص", Description: "عصي ومصباح رأس وحقيبة"},
			{Name: "تجربة كبار الشخصيات", Price: "1500 ريال للشخص", Description: "مخيم خاص وطاهٍ ومصور"},
		},
	},
	{
		ID:       3,
		Language: LanguageAR,
		Title:    "يوم الغوص في البحر الأحمر",
		Location: "أبحر، جدة",
		Duration: "6 ساعات",
		FullDescription: "رحلة بالقارب إلى موقعين من الشعاب المرجانية شمال جدة مع مدربين معتمدين.",
		Pricing: []PricingTier{
			{Name: "غوص استكشافي", Price: "450 ريال", Description: "غطستان مع مرشد وكامل المعدات"},
			{Name: "باقة العائلة", Price: "1600 ريال إجمالي", Description: "قارب لعائلة حتى 5 أفراد", TourType: TourTypePrivate},
		},
		AddOns: []AddOn{
			{Name: "غداء مأكولات بحرية", Price: "95 ريال للشخص", Description: "يقدم على القارب ويدفع للطاقم"},
			{Name: "فيديو تحت الماء", Price: "200 ريال للشخص", Description: "مقطع محرر لغطساتك"},
			{Name: "توقيت مخصص - فردي", Price: "300 ريال للشخص", Description: "انطلاق مبكر أو متأخر"},
		},
	},
}
